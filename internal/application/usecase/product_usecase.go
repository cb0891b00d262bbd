package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/donaciones-api/internal/application/dto"
	"github.com/jhoicas/donaciones-api/internal/application/identity"
	appinventory "github.com/jhoicas/donaciones-api/internal/application/inventory"
	"github.com/jhoicas/donaciones-api/internal/domain"
	"github.com/jhoicas/donaciones-api/internal/domain/entity"
	"github.com/jhoicas/donaciones-api/internal/domain/inventory"
	"github.com/jhoicas/donaciones-api/internal/domain/quantity"
	"github.com/jhoicas/donaciones-api/internal/domain/repository"
	"github.com/jhoicas/donaciones-api/internal/domain/unit"
)

// ProductUseCase registro y consulta de productos. Quantity solo cambia vía movimientos.
type ProductUseCase struct {
	txRunner appinventory.TxRunner
	repo     repository.ProductRepository
	movRepo  repository.StockMovementRepository
	now      func() time.Time
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	txRunner appinventory.TxRunner,
	repo repository.ProductRepository,
	movRepo repository.StockMovementRepository,
) *ProductUseCase {
	return &ProductUseCase{txRunner: txRunner, repo: repo, movRepo: movRepo, now: time.Now}
}

// Create registra un producto con su saldo inicial y deja la fila CREATE en auditoría.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	user, err := identity.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	product, err := newProduct(in)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	product.CreatedAt = now
	product.UpdatedAt = now

	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		_ repository.StockMovementRepository,
		auditRepo repository.AuditLogRepository,
	) error {
		if err := productRepo.Create(ctx, product); err != nil {
			return err
		}
		return auditRepo.Create(ctx, &entity.AuditLog{
			OperationID:     uuid.New().String(),
			UserID:          user.ID,
			Action:          entity.AuditActionCreate,
			Entity:          entity.AuditEntityProduct,
			RecordChangedID: strconv.FormatInt(product.ID, 10),
			ChangedValue:    product.Quantity.String(),
			Details:         fmt.Sprintf("Registro de %q con %s %s", product.Name, product.Quantity, product.Unit),
			CreatedAt:       now,
		})
	})
	if err != nil {
		if !domain.IsLedgerError(err) {
			return nil, fmt.Errorf("%w: %w", domain.ErrPersistence, err)
		}
		return nil, err
	}
	return dto.NewProductResponse(product), nil
}

// newProduct valida la solicitud de registro. Un producto en UN debe traer su ancla completa.
func newProduct(in dto.CreateProductRequest) (*entity.Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	q, err := quantity.Parse(in.Quantity)
	if err != nil {
		return nil, err
	}
	if q.IsNegative() {
		return nil, fmt.Errorf("%w: la cantidad inicial no puede ser negativa", domain.ErrInvalidInput)
	}
	u, err := unit.Parse(in.Unit)
	if err != nil {
		return nil, err
	}
	switch in.ProductType {
	case entity.ProductTypeDonated, entity.ProductTypePurchased:
	default:
		return nil, fmt.Errorf("%w: product_type %q", domain.ErrInvalidInput, in.ProductType)
	}

	p := &entity.Product{
		Name:            name,
		Quantity:        q,
		InitialQuantity: q,
		Unit:            u,
		ValidityDate:    in.ValidityDate.Time,
		Lot:             strings.TrimSpace(in.Lot),
		DonorID:         in.DonorID,
		SupplierID:      in.SupplierID,
		ReceiverID:      in.ReceiverID,
		ProductType:     in.ProductType,
	}

	if in.UnitWeight != nil || in.UnitOfUnitWeight != "" {
		if in.UnitWeight == nil || !in.UnitWeight.IsPositive() {
			return nil, fmt.Errorf("%w: unit_weight debe ser mayor que cero", domain.ErrInvalidInput)
		}
		if !in.UnitWeight.Equal(in.UnitWeight.Truncate(inventory.StorageScale)) {
			return nil, fmt.Errorf("%w: unit_weight admite a lo sumo %d decimales", domain.ErrInvalidInput, inventory.StorageScale)
		}
		wu, err := unit.Parse(in.UnitOfUnitWeight)
		if err != nil {
			return nil, err
		}
		if wu.IsDiscrete() {
			return nil, fmt.Errorf("%w: unit_of_unit_weight debe ser KG, G o L", domain.ErrInvalidInput)
		}
		w := *in.UnitWeight
		p.UnitWeight = &w
		p.UnitOfUnitWeight = wu
	}
	if u.IsDiscrete() && p.UnitWeight == nil {
		return nil, fmt.Errorf("%w: unit_weight y unit_of_unit_weight son requeridos para UN", domain.ErrInvalidInput)
	}
	return p, nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return dto.NewProductResponse(product), nil
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(ctx context.Context, productType, search string, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(ctx, repository.ProductFilter{
		ProductType: productType, Search: search, Limit: limit, Offset: offset,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *dto.NewProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListMovements devuelve el historial de movimientos del producto.
func (uc *ProductUseCase) ListMovements(ctx context.Context, productID int64) ([]dto.MovementResponse, error) {
	product, err := uc.repo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	movs, err := uc.movRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, dto.NewMovementResponse(m))
	}
	return out, nil
}

// VerifyLedger compara el saldo materializado con InitialQuantity + Σ movimientos.
func (uc *ProductUseCase) VerifyLedger(ctx context.Context, productID int64) (*dto.LedgerCheckResponse, error) {
	product, err := uc.repo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	movs, err := uc.movRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	rebuilt, err := inventory.Reconstruct(product, movs)
	if err != nil {
		return nil, err
	}
	return &dto.LedgerCheckResponse{
		ProductID:     product.ID,
		Stored:        product.Quantity.String(),
		Reconstructed: rebuilt.String(),
		Movements:     len(movs),
		Consistent:    rebuilt.Equal(product.Quantity),
	}, nil
}
