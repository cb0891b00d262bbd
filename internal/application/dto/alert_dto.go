package dto

import "time"

// AlertResponse alerta de vencimiento para la UI.
type AlertResponse struct {
	ID           int64     `json:"id"`
	ProductID    int64     `json:"product_id"`
	ProductName  string    `json:"product_name"`
	ValidityDate time.Time `json:"validity_date"`
	Type         string    `json:"type"`
	IsRead       bool      `json:"is_read"`
	CreatedAt    time.Time `json:"created_at"`
}

// AlertListResponse lista paginada de alertas.
type AlertListResponse struct {
	Items []AlertResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// ScanResponse resumen de una revisión de vencimientos.
type ScanResponse struct {
	Scanned int `json:"scanned"`
	Created int `json:"created"`
	Failed  int `json:"failed"`
}
