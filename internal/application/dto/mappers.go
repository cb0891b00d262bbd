package dto

import "github.com/jhoicas/donaciones-api/internal/domain/entity"

// NewProductResponse mapea la entidad a su salida.
func NewProductResponse(p *entity.Product) *ProductResponse {
	return &ProductResponse{
		ID:               p.ID,
		Name:             p.Name,
		Quantity:         p.Quantity,
		InitialQuantity:  p.InitialQuantity,
		Unit:             string(p.Unit),
		UnitWeight:       p.UnitWeight,
		UnitOfUnitWeight: string(p.UnitOfUnitWeight),
		ValidityDate:     p.ValidityDate,
		Lot:              p.Lot,
		DonorID:          p.DonorID,
		SupplierID:       p.SupplierID,
		ReceiverID:       p.ReceiverID,
		ProductType:      p.ProductType,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

// NewMovementResponse mapea un movimiento a su salida.
func NewMovementResponse(m *entity.StockMovement) MovementResponse {
	return MovementResponse{
		ID:               m.ID,
		OperationID:      m.OperationID,
		ProductID:        m.ProductID,
		Quantity:         m.Quantity,
		Unit:             string(m.Unit),
		MovementType:     m.MovementType,
		MovementCategory: m.MovementCategory,
		Observation:      m.Observation,
		CreatedBy:        m.CreatedBy,
		CreatedAt:        m.CreatedAt,
	}
}

// NewAlertResponse mapea una alerta con datos de producto.
func NewAlertResponse(n *entity.NotificationView) AlertResponse {
	return AlertResponse{
		ID:           n.ID,
		ProductID:    n.ProductID,
		ProductName:  n.ProductName,
		ValidityDate: n.ValidityDate,
		Type:         n.Type,
		IsRead:       n.IsRead,
		CreatedAt:    n.CreatedAt,
	}
}
