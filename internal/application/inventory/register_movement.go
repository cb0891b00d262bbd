package inventory

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/donaciones-api/internal/application/dto"
	"github.com/jhoicas/donaciones-api/internal/application/identity"
	"github.com/jhoicas/donaciones-api/internal/domain"
	"github.com/jhoicas/donaciones-api/internal/domain/entity"
	"github.com/jhoicas/donaciones-api/internal/domain/inventory"
	"github.com/jhoicas/donaciones-api/internal/domain/quantity"
	"github.com/jhoicas/donaciones-api/internal/domain/repository"
	"github.com/jhoicas/donaciones-api/internal/domain/unit"
)

// RegisterMovementUseCase aplica entradas, salidas y ajustes al saldo de un producto.
// Cada operación corre en una transacción con bloqueo de fila (SELECT FOR UPDATE) y escribe
// movimiento + saldo + auditoría, o nada.
type RegisterMovementUseCase struct {
	txRunner TxRunner
	log      zerolog.Logger
	now      func() time.Time
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner, log zerolog.Logger) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{
		txRunner: txRunner,
		log:      log,
		now:      time.Now,
	}
}

// MovementInputDTO entrada de un movimiento tal como llega del formulario.
type MovementInputDTO struct {
	ProductID   int64
	Quantity    string
	Unit        string
	Category    string
	Observation string
}

// movement entrada ya validada en el borde.
type movement struct {
	productID   int64
	quantity    decimal.Decimal
	unit        unit.Unit
	category    string
	observation string
}

// RegisterInput registra una entrada (compra, donación, devolución, traslado).
func (uc *RegisterMovementUseCase) RegisterInput(ctx context.Context, in MovementInputDTO) (*dto.ProductResponse, error) {
	return uc.register(ctx, entity.MovementTypeInput, in)
}

// RegisterOutput registra una salida. Falla con ErrInsufficientStock si el saldo quedaría negativo.
func (uc *RegisterMovementUseCase) RegisterOutput(ctx context.Context, in MovementInputDTO) (*dto.ProductResponse, error) {
	return uc.register(ctx, entity.MovementTypeOutput, in)
}

// RegisterAdjustment registra un ajuste positivo o negativo.
func (uc *RegisterMovementUseCase) RegisterAdjustment(ctx context.Context, in MovementInputDTO, positive bool) (*dto.ProductResponse, error) {
	typ := entity.MovementTypeAdjustmentNegative
	if positive {
		typ = entity.MovementTypeAdjustmentPositive
	}
	return uc.register(ctx, typ, in)
}

func (uc *RegisterMovementUseCase) register(ctx context.Context, typ string, in MovementInputDTO) (*dto.ProductResponse, error) {
	mv, err := validate(typ, in)
	if err != nil {
		return nil, err
	}
	user, err := identity.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	opID := uuid.New().String()
	var updated *entity.Product

	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.StockMovementRepository,
		auditRepo repository.AuditLogRepository,
	) error {
		// Bloquea la fila del producto: dos salidas concurrentes no pueden leer el mismo saldo.
		product, err := productRepo.GetForUpdate(ctx, mv.productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}
		if err := unit.CheckCompatible(mv.unit, product.Unit); err != nil {
			return err
		}
		converted, err := inventory.ConvertDelta(product, mv.quantity, mv.unit)
		if err != nil {
			return err
		}
		previous := product.Quantity
		next, err := inventory.Apply(previous, converted, typ)
		if err != nil {
			return err
		}

		mov := &entity.StockMovement{
			OperationID:      opID,
			ProductID:        product.ID,
			Quantity:         mv.quantity,
			Unit:             mv.unit,
			MovementType:     typ,
			MovementCategory: mv.category,
			Observation:      observation(typ, mv, user),
			CreatedBy:        user.ID,
			CreatedAt:        now,
		}
		if err := movRepo.Create(ctx, mov); err != nil {
			return err
		}
		if err := productRepo.UpdateQuantity(ctx, product.ID, next); err != nil {
			return err
		}
		audit := &entity.AuditLog{
			OperationID:     opID,
			UserID:          user.ID,
			Action:          entity.AuditActionUpdate,
			Entity:          entity.AuditEntityProduct,
			RecordChangedID: strconv.FormatInt(product.ID, 10),
			ChangedValue:    next.String(),
			Details: fmt.Sprintf("%s de %s %s en %q: %s → %s %s",
				movementLabel(typ), mv.quantity, mv.unit, product.Name, previous, next, product.Unit),
			CreatedAt: now,
		}
		if err := auditRepo.Create(ctx, audit); err != nil {
			return err
		}

		product.Quantity = next
		product.UpdatedAt = now
		updated = product
		return nil
	})
	if err != nil {
		if !domain.IsLedgerError(err) {
			uc.log.Error().Err(err).Int64("product_id", mv.productID).Str("type", typ).Msg("movimiento revertido")
			return nil, fmt.Errorf("%w: %w", domain.ErrPersistence, err)
		}
		return nil, err
	}

	uc.log.Info().
		Str("operation_id", opID).
		Int64("product_id", mv.productID).
		Str("type", typ).
		Str("quantity", mv.quantity.String()).
		Str("unit", mv.unit.String()).
		Str("balance", updated.Quantity.String()).
		Str("user_id", user.ID).
		Msg("movimiento registrado")
	return dto.NewProductResponse(updated), nil
}

// validate valida la entrada en el borde, antes de tocar la base de datos.
func validate(typ string, in MovementInputDTO) (movement, error) {
	if in.ProductID <= 0 {
		return movement{}, fmt.Errorf("%w: product_id requerido", domain.ErrInvalidInput)
	}
	q, err := quantity.ParsePositive(in.Quantity)
	if err != nil {
		return movement{}, err
	}
	u, err := unit.Parse(in.Unit)
	if err != nil {
		return movement{}, err
	}
	if !entity.ValidCategory(typ, in.Category) {
		return movement{}, fmt.Errorf("%w: categoría %q no válida para %s", domain.ErrInvalidInput, in.Category, typ)
	}
	return movement{
		productID:   in.ProductID,
		quantity:    q,
		unit:        u,
		category:    in.Category,
		observation: in.Observation,
	}, nil
}

func movementLabel(typ string) string {
	switch typ {
	case entity.MovementTypeInput:
		return "Entrada"
	case entity.MovementTypeOutput:
		return "Salida"
	case entity.MovementTypeAdjustmentPositive:
		return "Ajuste positivo"
	case entity.MovementTypeAdjustmentNegative:
		return "Ajuste negativo"
	}
	return typ
}

// observation texto generado del movimiento; la observación libre del usuario va al final.
func observation(typ string, mv movement, user entity.User) string {
	s := fmt.Sprintf("%s de %s %s (%s), usuario %s", movementLabel(typ), mv.quantity, mv.unit, mv.category, userLabel(user))
	if mv.observation != "" {
		s += ": " + mv.observation
	}
	return s
}

func userLabel(u entity.User) string {
	if u.Name != "" {
		return u.Name
	}
	return u.ID
}
