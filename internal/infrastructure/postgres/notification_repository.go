package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/donaciones-api/internal/domain"
	"github.com/jhoicas/donaciones-api/internal/domain/entity"
	"github.com/jhoicas/donaciones-api/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo alertas de vencimiento sobre PostgreSQL.
type NotificationRepo struct {
	q Querier
}

// NewNotificationRepository construye el repo.
func NewNotificationRepository(q Querier) *NotificationRepo {
	return &NotificationRepo{q: q}
}

// Find busca la alerta (producto, tipo).
func (r *NotificationRepo) Find(ctx context.Context, productID int64, notificationType string) (*entity.Notification, error) {
	n, err := scanNotification(r.q.QueryRow(ctx,
		`SELECT id, product_id, type, is_read, created_at FROM notifications WHERE product_id = $1 AND type = $2`,
		productID, notificationType))
	if err != nil {
		return nil, fmt.Errorf("find notification: %w", err)
	}
	return n, nil
}

// Create inserta la alerta. El índice único (product_id, type) respalda al find-before-create.
func (r *NotificationRepo) Create(ctx context.Context, n *entity.Notification) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO notifications (product_id, type, is_read, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		n.ProductID, n.Type, n.IsRead, n.CreatedAt,
	).Scan(&n.ID)
	if err != nil {
		if lerr := ledgerError(err, domain.ErrProductNotFound); lerr != nil {
			return lerr
		}
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

// GetByID obtiene una alerta.
func (r *NotificationRepo) GetByID(ctx context.Context, id int64) (*entity.Notification, error) {
	n, err := scanNotification(r.q.QueryRow(ctx,
		`SELECT id, product_id, type, is_read, created_at FROM notifications WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("get notification: %w", err)
	}
	return n, nil
}

// UpdateReadStatus fija is_read.
func (r *NotificationRepo) UpdateReadStatus(ctx context.Context, id int64, isRead bool) error {
	cmd, err := r.q.Exec(ctx, `UPDATE notifications SET is_read = $2 WHERE id = $1`, id, isRead)
	if err != nil {
		return fmt.Errorf("update notification: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// MarkAllAsRead marca como leídas las no leídas.
func (r *NotificationRepo) MarkAllAsRead(ctx context.Context) (int64, error) {
	cmd, err := r.q.Exec(ctx, `UPDATE notifications SET is_read = TRUE WHERE is_read = FALSE`)
	if err != nil {
		return 0, fmt.Errorf("mark notifications read: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// Delete elimina una alerta.
func (r *NotificationRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM notifications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete notification: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteAll elimina todas las alertas.
func (r *NotificationRepo) DeleteAll(ctx context.Context) (int64, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM notifications`)
	if err != nil {
		return 0, fmt.Errorf("delete notifications: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// List alertas con nombre y validez del producto, más recientes primero.
func (r *NotificationRepo) List(ctx context.Context, onlyUnread bool, limit, offset int) ([]*entity.NotificationView, error) {
	rows, err := r.q.Query(ctx, `
		SELECT n.id, n.product_id, n.type, n.is_read, n.created_at, p.name, p.validity_date
		FROM notifications n
		JOIN products p ON p.id = n.product_id
		WHERE ($1 = FALSE OR n.is_read = FALSE)
		ORDER BY n.created_at DESC, n.id DESC
		LIMIT $2 OFFSET $3`, onlyUnread, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()
	var list []*entity.NotificationView
	for rows.Next() {
		var (
			v        entity.NotificationView
			validity *time.Time
		)
		if err := rows.Scan(&v.ID, &v.ProductID, &v.Type, &v.IsRead, &v.CreatedAt, &v.ProductName, &validity); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		if validity != nil {
			v.ValidityDate = *validity
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

// CountUnread cantidad de alertas sin leer.
func (r *NotificationRepo) CountUnread(ctx context.Context) (int64, error) {
	var n int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM notifications WHERE is_read = FALSE`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count notifications: %w", err)
	}
	return n, nil
}

func scanNotification(row pgx.Row) (*entity.Notification, error) {
	var n entity.Notification
	if err := row.Scan(&n.ID, &n.ProductID, &n.Type, &n.IsRead, &n.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &n, nil
}
