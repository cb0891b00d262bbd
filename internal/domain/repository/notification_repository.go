package repository

import (
	"context"

	"github.com/jhoicas/donaciones-api/internal/domain/entity"
)

// NotificationRepository puerto de persistencia de alertas de vencimiento.
// Find y GetByID devuelven (nil, nil) si no existe.
type NotificationRepository interface {
	Find(ctx context.Context, productID int64, notificationType string) (*entity.Notification, error)
	Create(ctx context.Context, n *entity.Notification) error
	GetByID(ctx context.Context, id int64) (*entity.Notification, error)
	UpdateReadStatus(ctx context.Context, id int64, isRead bool) error
	MarkAllAsRead(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) (int64, error)
	List(ctx context.Context, onlyUnread bool, limit, offset int) ([]*entity.NotificationView, error)
	CountUnread(ctx context.Context) (int64, error)
}
