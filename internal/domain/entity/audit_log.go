package entity

import "time"

// Acciones registradas en la bitácora de auditoría.
const (
	AuditActionCreate       = "CREATE"
	AuditActionUpdate       = "UPDATE"
	AuditActionDelete       = "DELETE"
	AuditActionLogin        = "LOGIN"
	AuditActionLogout       = "LOGOUT"
	AuditActionLoginFailure = "LOGIN_FAILURE"
)

// AuditEntityProduct nombre de entidad usado por el libro de inventario.
const AuditEntityProduct = "Product"

// AuditLog fila de auditoría, solo se inserta.
type AuditLog struct {
	ID              int64
	OperationID     string
	UserID          string
	Action          string
	Entity          string
	RecordChangedID string
	ChangedValue    string
	Details         string
	CreatedAt       time.Time
}
