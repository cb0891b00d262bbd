package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para registrar un producto.
type CreateProductRequest struct {
	Name             string           `json:"name"`
	Quantity         string           `json:"quantity"`
	Unit             string           `json:"unit"`
	UnitWeight       *decimal.Decimal `json:"unit_weight,omitempty"`
	UnitOfUnitWeight string           `json:"unit_of_unit_weight,omitempty"`
	ValidityDate     Date             `json:"validity_date"`
	Lot              string           `json:"lot"`
	DonorID          *int64           `json:"donor_id,omitempty"`
	SupplierID       *int64           `json:"supplier_id,omitempty"`
	ReceiverID       string           `json:"receiver_id"`
	ProductType      string           `json:"product_type"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID               int64            `json:"id"`
	Name             string           `json:"name"`
	Quantity         decimal.Decimal  `json:"quantity"`
	InitialQuantity  decimal.Decimal  `json:"initial_quantity"`
	Unit             string           `json:"unit"`
	UnitWeight       *decimal.Decimal `json:"unit_weight,omitempty"`
	UnitOfUnitWeight string           `json:"unit_of_unit_weight,omitempty"`
	ValidityDate     time.Time        `json:"validity_date"`
	Lot              string           `json:"lot"`
	DonorID          *int64           `json:"donor_id,omitempty"`
	SupplierID       *int64           `json:"supplier_id,omitempty"`
	ReceiverID       string           `json:"receiver_id"`
	ProductType      string           `json:"product_type"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// MovementResponse salida de un movimiento del historial.
type MovementResponse struct {
	ID               int64           `json:"id"`
	OperationID      string          `json:"operation_id"`
	ProductID        int64           `json:"product_id"`
	Quantity         decimal.Decimal `json:"quantity"`
	Unit             string          `json:"unit"`
	MovementType     string          `json:"movement_type"`
	MovementCategory string          `json:"movement_category"`
	Observation      string          `json:"observation"`
	CreatedBy        string          `json:"created_by"`
	CreatedAt        time.Time       `json:"created_at"`
}
