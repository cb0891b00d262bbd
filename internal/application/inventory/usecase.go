package inventory

import (
	"context"
	"fmt"

	"github.com/jhoicas/donaciones-api/internal/application/dto"
	"github.com/jhoicas/donaciones-api/internal/domain"
)

// RegisterFromRequest adapta el request HTTP al caso de uso según el tipo de movimiento.
// movementKind es "input", "output" o "adjustment"; para ajustes in.Sign decide el signo.
func (uc *RegisterMovementUseCase) RegisterFromRequest(ctx context.Context, movementKind string, in dto.RegisterMovementRequest) (*dto.ProductResponse, error) {
	input := MovementInputDTO{
		ProductID:   in.ProductID,
		Quantity:    in.Quantity,
		Unit:        in.Unit,
		Category:    in.Category,
		Observation: in.Observation,
	}
	switch movementKind {
	case "input":
		return uc.RegisterInput(ctx, input)
	case "output":
		return uc.RegisterOutput(ctx, input)
	case "adjustment":
		switch in.Sign {
		case dto.AdjustmentPositive:
			return uc.RegisterAdjustment(ctx, input, true)
		case dto.AdjustmentNegative:
			return uc.RegisterAdjustment(ctx, input, false)
		}
		return nil, fmt.Errorf("%w: sign debe ser POSITIVE o NEGATIVE", domain.ErrInvalidInput)
	}
	return nil, fmt.Errorf("%w: tipo de movimiento %q", domain.ErrInvalidInput, movementKind)
}
