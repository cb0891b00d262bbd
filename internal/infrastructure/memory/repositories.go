package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/donaciones-api/internal/domain"
	"github.com/jhoicas/donaciones-api/internal/domain/entity"
	"github.com/jhoicas/donaciones-api/internal/domain/repository"
)

var (
	_ repository.ProductRepository       = (*ProductRepo)(nil)
	_ repository.StockMovementRepository = (*StockMovementRepo)(nil)
	_ repository.AuditLogRepository      = (*AuditLogRepo)(nil)
	_ repository.NotificationRepository  = (*NotificationRepo)(nil)
	_ repository.DonorRepository         = (*DonorRepo)(nil)
)

// ProductRepo productos en memoria. Devuelve copias: nadie fuera del store modifica sus filas.
type ProductRepo struct {
	s    *Store
	inTx bool
}

func cloneProduct(p *entity.Product) *entity.Product {
	c := *p
	if p.UnitWeight != nil {
		w := *p.UnitWeight
		c.UnitWeight = &w
	}
	return &c
}

func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	defer r.s.lock(r.inTx)()
	r.s.productSeq++
	p.ID = r.s.productSeq
	r.s.products[p.ID] = cloneProduct(p)
	return nil
}

func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	defer r.s.lock(r.inTx)()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	return cloneProduct(p), nil
}

// GetForUpdate dentro de una transacción el store ya está bloqueado completo.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *ProductRepo) UpdateQuantity(ctx context.Context, id int64, quantity decimal.Decimal) error {
	defer r.s.lock(r.inTx)()
	p, ok := r.s.products[id]
	if !ok {
		return fmt.Errorf("update product quantity: producto %d no existe", id)
	}
	if quantity.IsNegative() {
		return fmt.Errorf("update product quantity: saldo negativo %s", quantity)
	}
	p.Quantity = quantity
	p.UpdatedAt = time.Now()
	return nil
}

func (r *ProductRepo) List(ctx context.Context, f repository.ProductFilter) ([]*entity.Product, error) {
	defer r.s.lock(r.inTx)()
	search := strings.ToLower(strings.TrimSpace(f.Search))
	var list []*entity.Product
	for _, p := range r.s.products {
		if f.ProductType != "" && p.ProductType != f.ProductType {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		list = append(list, cloneProduct(p))
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.After(list[j].CreatedAt)
		}
		return list[i].ID > list[j].ID
	})
	return page(list, f.Limit, f.Offset), nil
}

func (r *ProductRepo) ListExpiringBefore(ctx context.Context, cutoff time.Time) ([]*entity.Product, error) {
	defer r.s.lock(r.inTx)()
	var list []*entity.Product
	for _, p := range r.s.products {
		if p.ValidityDate.IsZero() || p.ValidityDate.After(cutoff) {
			continue
		}
		list = append(list, cloneProduct(p))
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].ValidityDate.Equal(list[j].ValidityDate) {
			return list[i].ValidityDate.Before(list[j].ValidityDate)
		}
		return list[i].ID < list[j].ID
	})
	return list, nil
}

// StockMovementRepo movimientos en memoria (solo append).
type StockMovementRepo struct {
	s    *Store
	inTx bool
}

func (r *StockMovementRepo) Create(ctx context.Context, m *entity.StockMovement) error {
	defer r.s.lock(r.inTx)()
	r.s.movementSeq++
	m.ID = r.s.movementSeq
	c := *m
	r.s.movements = append(r.s.movements, &c)
	return nil
}

// ListByProduct el slice ya está en orden de inserción.
func (r *StockMovementRepo) ListByProduct(ctx context.Context, productID int64) ([]*entity.StockMovement, error) {
	defer r.s.lock(r.inTx)()
	var list []*entity.StockMovement
	for _, m := range r.s.movements {
		if m.ProductID == productID {
			c := *m
			list = append(list, &c)
		}
	}
	return list, nil
}

// AuditLogRepo bitácora en memoria.
type AuditLogRepo struct {
	s    *Store
	inTx bool
}

func (r *AuditLogRepo) Create(ctx context.Context, l *entity.AuditLog) error {
	defer r.s.lock(r.inTx)()
	r.s.auditSeq++
	l.ID = r.s.auditSeq
	c := *l
	r.s.audit = append(r.s.audit, &c)
	return nil
}

// NotificationRepo alertas en memoria.
type NotificationRepo struct {
	s *Store
}

func (r *NotificationRepo) Find(ctx context.Context, productID int64, notificationType string) (*entity.Notification, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.find(productID, notificationType), nil
}

func (r *NotificationRepo) find(productID int64, typ string) *entity.Notification {
	for _, n := range r.s.notifications {
		if n.ProductID == productID && n.Type == typ {
			c := *n
			return &c
		}
	}
	return nil
}

// Create respeta la unicidad (producto, tipo) igual que el índice de PostgreSQL.
func (r *NotificationRepo) Create(ctx context.Context, n *entity.Notification) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.find(n.ProductID, n.Type) != nil {
		return domain.ErrDuplicate
	}
	r.s.notificationSeq++
	n.ID = r.s.notificationSeq
	c := *n
	r.s.notifications[n.ID] = &c
	return nil
}

func (r *NotificationRepo) GetByID(ctx context.Context, id int64) (*entity.Notification, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n, ok := r.s.notifications[id]
	if !ok {
		return nil, nil
	}
	c := *n
	return &c, nil
}

func (r *NotificationRepo) UpdateReadStatus(ctx context.Context, id int64, isRead bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n, ok := r.s.notifications[id]
	if !ok {
		return domain.ErrNotFound
	}
	n.IsRead = isRead
	return nil
}

func (r *NotificationRepo) MarkAllAsRead(ctx context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var changed int64
	for _, n := range r.s.notifications {
		if !n.IsRead {
			n.IsRead = true
			changed++
		}
	}
	return changed, nil
}

func (r *NotificationRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.notifications[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.notifications, id)
	return nil
}

func (r *NotificationRepo) DeleteAll(ctx context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n := int64(len(r.s.notifications))
	r.s.notifications = make(map[int64]*entity.Notification)
	return n, nil
}

func (r *NotificationRepo) List(ctx context.Context, onlyUnread bool, limit, offset int) ([]*entity.NotificationView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.NotificationView
	for _, n := range r.s.notifications {
		if onlyUnread && n.IsRead {
			continue
		}
		v := &entity.NotificationView{Notification: *n}
		if p, ok := r.s.products[n.ProductID]; ok {
			v.ProductName = p.Name
			v.ValidityDate = p.ValidityDate
		}
		list = append(list, v)
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.After(list[j].CreatedAt)
		}
		return list[i].ID > list[j].ID
	})
	return page(list, limit, offset), nil
}

func (r *NotificationRepo) CountUnread(ctx context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for _, a := range r.s.notifications {
		if !a.IsRead {
			n++
		}
	}
	return n, nil
}

// DonorRepo donantes en memoria.
type DonorRepo struct {
	s *Store
}

func (r *DonorRepo) EnsureByName(ctx context.Context, name string) (*entity.Donor, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if d, ok := r.s.donors[name]; ok {
		c := *d
		return &c, nil
	}
	r.s.donorSeq++
	d := &entity.Donor{ID: r.s.donorSeq, Name: name, CreatedAt: time.Now()}
	r.s.donors[name] = d
	c := *d
	return &c, nil
}

// page aplica limit/offset; limit 0 devuelve todo desde offset.
func page[T any](list []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(list) {
		return nil
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}
