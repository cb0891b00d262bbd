// Package memory implementa los puertos de persistencia en memoria (DB_DRIVER=memory y tests).
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/donaciones-api/internal/application/inventory"
	"github.com/jhoicas/donaciones-api/internal/domain/entity"
)

// Store datos compartidos por los repositorios en memoria.
type Store struct {
	mu sync.Mutex

	products      map[int64]*entity.Product
	movements     []*entity.StockMovement
	audit         []*entity.AuditLog
	notifications map[int64]*entity.Notification
	donors        map[string]*entity.Donor

	productSeq, movementSeq, auditSeq, notificationSeq, donorSeq int64
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{
		products:      make(map[int64]*entity.Product),
		notifications: make(map[int64]*entity.Notification),
		donors:        make(map[string]*entity.Donor),
	}
}

// Products repositorio de productos fuera de transacción.
func (s *Store) Products() *ProductRepo { return &ProductRepo{s: s} }

// Movements repositorio de movimientos fuera de transacción.
func (s *Store) Movements() *StockMovementRepo { return &StockMovementRepo{s: s} }

// AuditLogs repositorio de auditoría fuera de transacción.
func (s *Store) AuditLogs() *AuditLogRepo { return &AuditLogRepo{s: s} }

// Notifications repositorio de alertas.
func (s *Store) Notifications() *NotificationRepo { return &NotificationRepo{s: s} }

// Donors repositorio de donantes.
func (s *Store) Donors() *DonorRepo { return &DonorRepo{s: s} }

// AuditEntries copia de la bitácora (tests y diagnóstico).
func (s *Store) AuditEntries() []entity.AuditLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.AuditLog, 0, len(s.audit))
	for _, a := range s.audit {
		out = append(out, *a)
	}
	return out
}

// lock toma el mutex salvo que el repo ya corra dentro de una transacción (que lo tiene tomado).
func (s *Store) lock(inTx bool) func() {
	if inTx {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

type snapshot struct {
	products    map[int64]entity.Product
	movements   int
	audit       int
	productSeq  int64
	movementSeq int64
	auditSeq    int64
}

func (s *Store) snapshot() snapshot {
	snap := snapshot{
		products:    make(map[int64]entity.Product, len(s.products)),
		movements:   len(s.movements),
		audit:       len(s.audit),
		productSeq:  s.productSeq,
		movementSeq: s.movementSeq,
		auditSeq:    s.auditSeq,
	}
	for id, p := range s.products {
		snap.products[id] = *p
	}
	return snap
}

func (s *Store) restore(snap snapshot) {
	s.products = make(map[int64]*entity.Product, len(snap.products))
	for id, p := range snap.products {
		p := p
		s.products[id] = &p
	}
	s.movements = s.movements[:snap.movements]
	s.audit = s.audit[:snap.audit]
	s.productSeq = snap.productSeq
	s.movementSeq = snap.movementSeq
	s.auditSeq = snap.auditSeq
}

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner transacción en memoria: serializa las operaciones del libro y revierte todo si fn falla.
type TxRunner struct {
	s *Store
}

// NewTxRunner construye el runner sobre el store.
func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{s: s}
}

// Run ejecuta fn con el store bloqueado; ante error o contexto cancelado restaura el estado previo.
func (r *TxRunner) Run(ctx context.Context, fn inventory.TxFunc) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	snap := r.s.snapshot()
	err := fn(
		&ProductRepo{s: r.s, inTx: true},
		&StockMovementRepo{s: r.s, inTx: true},
		&AuditLogRepo{s: r.s, inTx: true},
	)
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		r.s.restore(snap)
		return err
	}
	return nil
}
