// Package alerts genera y administra las alertas de vencimiento de productos.
package alerts

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/donaciones-api/internal/application/dto"
	"github.com/jhoicas/donaciones-api/internal/domain"
	"github.com/jhoicas/donaciones-api/internal/domain/alert"
	"github.com/jhoicas/donaciones-api/internal/domain/entity"
	"github.com/jhoicas/donaciones-api/internal/domain/repository"
)

// AlertUseCase revisa vencimientos y expone el estado de lectura de las alertas.
type AlertUseCase struct {
	notifRepo   repository.NotificationRepository
	productRepo repository.ProductRepository
	log         zerolog.Logger
	windowDays  int
	now         func() time.Time

	// scanMu serializa las revisiones: dos scans simultáneos podrían pasar ambos el Find y duplicar la alerta.
	scanMu sync.Mutex
}

// NewAlertUseCase construye el caso de uso. windowDays <= 0 usa la ventana por defecto (30 días).
func NewAlertUseCase(
	notifRepo repository.NotificationRepository,
	productRepo repository.ProductRepository,
	log zerolog.Logger,
	windowDays int,
) *AlertUseCase {
	if windowDays <= 0 {
		windowDays = alert.DefaultExpiringWindowDays
	}
	return &AlertUseCase{
		notifRepo:   notifRepo,
		productRepo: productRepo,
		log:         log,
		windowDays:  windowDays,
		now:         time.Now,
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *AlertUseCase) WithClock(now func() time.Time) *AlertUseCase {
	uc.now = now
	return uc
}

// Scan revisa los productos que vencen dentro de la ventana y crea las alertas que falten.
// Un error en un producto se registra y la revisión sigue con el resto.
func (uc *AlertUseCase) Scan(ctx context.Context) (*dto.ScanResponse, error) {
	uc.scanMu.Lock()
	defer uc.scanMu.Unlock()

	now := uc.now()
	products, err := uc.productRepo.ListExpiringBefore(ctx, alert.Cutoff(now, uc.windowDays))
	if err != nil {
		return nil, err
	}

	res := &dto.ScanResponse{Scanned: len(products)}
	for _, p := range products {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		typ := alert.Classify(p.ValidityDate, now, uc.windowDays)
		if typ == "" {
			continue
		}
		created, err := uc.ensure(ctx, p.ID, typ, now)
		if err != nil {
			res.Failed++
			uc.log.Warn().Err(err).Int64("product_id", p.ID).Str("type", typ).Msg("no se pudo registrar la alerta")
			continue
		}
		if created {
			res.Created++
		}
	}

	uc.log.Info().
		Int("scanned", res.Scanned).
		Int("created", res.Created).
		Int("failed", res.Failed).
		Msg("revisión de vencimientos")
	return res, nil
}

// ensure crea la alerta (producto, tipo) si todavía no existe.
func (uc *AlertUseCase) ensure(ctx context.Context, productID int64, typ string, now time.Time) (bool, error) {
	existing, err := uc.notifRepo.Find(ctx, productID, typ)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}
	n := &entity.Notification{ProductID: productID, Type: typ, CreatedAt: now}
	if err := uc.notifRepo.Create(ctx, n); err != nil {
		// Otra instancia la creó entre el Find y el Create.
		if errors.Is(err, domain.ErrDuplicate) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// CheckProductAlerts disparo manual de la revisión.
func (uc *AlertUseCase) CheckProductAlerts(ctx context.Context) (*dto.ScanResponse, error) {
	return uc.Scan(ctx)
}

// ToggleReadStatus invierte el estado de lectura de una alerta.
func (uc *AlertUseCase) ToggleReadStatus(ctx context.Context, id int64) (*entity.Notification, error) {
	n, err := uc.notifRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, domain.ErrNotFound
	}
	n.IsRead = !n.IsRead
	if err := uc.notifRepo.UpdateReadStatus(ctx, id, n.IsRead); err != nil {
		return nil, err
	}
	return n, nil
}

// MarkAllAsRead marca todas las alertas como leídas y devuelve cuántas cambiaron.
func (uc *AlertUseCase) MarkAllAsRead(ctx context.Context) (int64, error) {
	return uc.notifRepo.MarkAllAsRead(ctx)
}

// DeleteAll elimina todas las alertas.
func (uc *AlertUseCase) DeleteAll(ctx context.Context) (int64, error) {
	return uc.notifRepo.DeleteAll(ctx)
}

// Delete elimina una alerta.
func (uc *AlertUseCase) Delete(ctx context.Context, id int64) error {
	n, err := uc.notifRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if n == nil {
		return domain.ErrNotFound
	}
	return uc.notifRepo.Delete(ctx, id)
}

// List lista alertas, las más recientes primero.
func (uc *AlertUseCase) List(ctx context.Context, onlyUnread bool, page dto.PageRequest) (*dto.AlertListResponse, error) {
	page.DefaultPage()
	list, err := uc.notifRepo.List(ctx, onlyUnread, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AlertResponse, 0, len(list))
	for _, n := range list {
		items = append(items, dto.NewAlertResponse(n))
	}
	return &dto.AlertListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// UnreadCount cantidad de alertas sin leer.
func (uc *AlertUseCase) UnreadCount(ctx context.Context) (int64, error) {
	return uc.notifRepo.CountUnread(ctx)
}
