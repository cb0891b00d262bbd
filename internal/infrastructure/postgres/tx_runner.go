package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/donaciones-api/internal/application/inventory"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// DefaultLockTimeout espera máxima por el bloqueo de fila de un producto.
const DefaultLockTimeout = 5 * time.Second

// TxRunner unidad de trabajo del libro sobre una transacción READ COMMITTED.
// Las escrituras concurrentes sobre un producto se serializan con el SELECT ... FOR UPDATE
// que hace GetForUpdate dentro de fn.
type TxRunner struct {
	pool        *pgxpool.Pool
	lockTimeout time.Duration
}

// NewTxRunner construye el runner con DefaultLockTimeout.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool, lockTimeout: DefaultLockTimeout}
}

// WithLockTimeout cambia la espera por el bloqueo de fila; 0 espera indefinidamente.
func (r *TxRunner) WithLockTimeout(d time.Duration) *TxRunner {
	r.lockTimeout = d
	return r
}

// Run ejecuta fn con repositorios atados a la tx. Commit solo si fn no falla; cualquier error,
// incluida la cancelación de ctx, revierte la transacción completa.
func (r *TxRunner) Run(ctx context.Context, fn inventory.TxFunc) error {
	err := pgx.BeginTxFunc(ctx, r.pool, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, func(tx pgx.Tx) error {
		if r.lockTimeout > 0 {
			// SET no acepta parámetros; set_config(..., true) equivale a SET LOCAL.
			if _, err := tx.Exec(ctx, `SELECT set_config('lock_timeout', $1, true)`,
				fmt.Sprintf("%dms", r.lockTimeout.Milliseconds())); err != nil {
				return fmt.Errorf("set lock_timeout: %w", err)
			}
		}
		return fn(NewProductRepository(tx), NewStockMovementRepository(tx), NewAuditLogRepository(tx))
	})
	if pgCode(err) == codeLockNotAvailable {
		return fmt.Errorf("producto bloqueado por otra operación: %w", err)
	}
	return err
}
