package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/donaciones-api/internal/domain/entity"
	"github.com/jhoicas/donaciones-api/internal/domain/repository"
)

var _ repository.DonorRepository = (*DonorRepo)(nil)

// DonorRepo donantes sobre PostgreSQL.
type DonorRepo struct {
	q Querier
}

// NewDonorRepository construye el repo.
func NewDonorRepository(q Querier) *DonorRepo {
	return &DonorRepo{q: q}
}

// EnsureByName devuelve el donante con ese nombre o lo crea.
func (r *DonorRepo) EnsureByName(ctx context.Context, name string) (*entity.Donor, error) {
	d, err := r.getByName(ctx, name)
	if err != nil || d != nil {
		return d, err
	}
	var created entity.Donor
	err = r.q.QueryRow(ctx,
		`INSERT INTO donors (name, created_at) VALUES ($1, now()) RETURNING id, name, created_at`, name,
	).Scan(&created.ID, &created.Name, &created.CreatedAt)
	if err != nil {
		// Carrera con otra siembra: releer.
		if isUniqueViolation(err) {
			return r.getByName(ctx, name)
		}
		return nil, fmt.Errorf("insert donor: %w", err)
	}
	return &created, nil
}

func (r *DonorRepo) getByName(ctx context.Context, name string) (*entity.Donor, error) {
	var d entity.Donor
	err := r.q.QueryRow(ctx, `SELECT id, name, created_at FROM donors WHERE name = $1`, name).
		Scan(&d.ID, &d.Name, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get donor: %w", err)
	}
	return &d, nil
}
