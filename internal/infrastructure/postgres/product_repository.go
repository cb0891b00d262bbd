package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/donaciones-api/internal/domain"
	"github.com/jhoicas/donaciones-api/internal/domain/entity"
	"github.com/jhoicas/donaciones-api/internal/domain/repository"
	"github.com/jhoicas/donaciones-api/internal/domain/unit"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, name, quantity, initial_quantity, unit, unit_weight, unit_of_unit_weight,
	validity_date, lot, donor_id, supplier_id, receiver_id, product_type, created_at, updated_at`

// Create persiste un nuevo producto y asigna su ID.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (name, quantity, initial_quantity, unit, unit_weight, unit_of_unit_weight,
			validity_date, lot, donor_id, supplier_id, receiver_id, product_type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		p.Name, p.Quantity, p.InitialQuantity, string(p.Unit), p.UnitWeight, nullableUnit(p.UnitOfUnitWeight),
		nullableTime(p.ValidityDate), p.Lot, p.DonorID, p.SupplierID, p.ReceiverID, p.ProductType,
		p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		if lerr := ledgerError(err, domain.ErrInvalidInput); lerr != nil {
			return fmt.Errorf("insert product: %w: %w", lerr, err)
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetForUpdate igual que GetByID pero bloquea la fila hasta el fin de la transacción.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		return nil, fmt.Errorf("lock product: %w", err)
	}
	return p, nil
}

// UpdateQuantity escribe el nuevo saldo.
func (r *ProductRepo) UpdateQuantity(ctx context.Context, id int64, quantity decimal.Decimal) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE products SET quantity = $2, updated_at = now() WHERE id = $1`,
		id, quantity,
	)
	if err != nil {
		if lerr := ledgerError(err, nil); lerr != nil {
			return fmt.Errorf("update product quantity: %w: %w", lerr, err)
		}
		return fmt.Errorf("update product quantity: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("update product quantity %d: %w", id, domain.ErrProductNotFound)
	}
	return nil
}

// List lista productos con filtros opcionales; Limit 0 devuelve todos.
func (r *ProductRepo) List(ctx context.Context, f repository.ProductFilter) ([]*entity.Product, error) {
	var (
		where []string
		args  []any
	)
	if f.ProductType != "" {
		args = append(args, f.ProductType)
		where = append(where, fmt.Sprintf("product_type = $%d", len(args)))
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		args = append(args, "%"+s+"%")
		where = append(where, fmt.Sprintf("name ILIKE $%d", len(args)))
	}
	query := `SELECT ` + productColumns + ` FROM products`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY created_at DESC, id DESC`
	if f.Limit > 0 {
		args = append(args, f.Limit, f.Offset)
		query += fmt.Sprintf(` LIMIT $%d OFFSET $%d`, len(args)-1, len(args))
	}
	return r.queryProducts(ctx, query, args...)
}

// ListExpiringBefore productos con fecha de validez <= cutoff (incluye los ya vencidos).
func (r *ProductRepo) ListExpiringBefore(ctx context.Context, cutoff time.Time) ([]*entity.Product, error) {
	return r.queryProducts(ctx,
		`SELECT `+productColumns+` FROM products
		WHERE validity_date IS NOT NULL AND validity_date <= $1
		ORDER BY validity_date, id`, cutoff)
}

func (r *ProductRepo) queryProducts(ctx context.Context, query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// scanProduct devuelve (nil, nil) si no hay fila.
func scanProduct(row pgx.Row) (*entity.Product, error) {
	var (
		p          entity.Product
		u          string
		weightUnit *string
		validity   *time.Time
	)
	err := row.Scan(
		&p.ID, &p.Name, &p.Quantity, &p.InitialQuantity, &u, &p.UnitWeight, &weightUnit,
		&validity, &p.Lot, &p.DonorID, &p.SupplierID, &p.ReceiverID, &p.ProductType,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	p.Unit = unit.Unit(u)
	if weightUnit != nil {
		p.UnitOfUnitWeight = unit.Unit(*weightUnit)
	}
	if validity != nil {
		p.ValidityDate = *validity
	}
	return &p, nil
}

func nullableUnit(u unit.Unit) *string {
	if u == "" {
		return nil
	}
	s := string(u)
	return &s
}

func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
