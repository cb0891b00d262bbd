package entity

import "time"

// Tipos de alerta de vencimiento.
const (
	NotificationExpiring = "EXPIRING"
	NotificationExpired  = "EXPIRED"
)

// Notification alerta de vencimiento de un producto. Existe como máximo una por (ProductID, Type).
type Notification struct {
	ID        int64
	ProductID int64
	Type      string
	IsRead    bool
	CreatedAt time.Time
}

// NotificationView alerta con datos del producto para listados.
type NotificationView struct {
	Notification
	ProductName  string
	ValidityDate time.Time
}
