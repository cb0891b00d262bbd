package repository

import (
	"context"

	"github.com/jhoicas/donaciones-api/internal/domain/entity"
)

// DonorRepository puerto mínimo de donantes usado por la siembra inicial.
type DonorRepository interface {
	// EnsureByName devuelve el donante con ese nombre, creándolo si no existe (idempotente).
	EnsureByName(ctx context.Context, name string) (*entity.Donor, error)
}
