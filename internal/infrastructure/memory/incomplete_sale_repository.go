// Package memory implementa repositorios en memoria del proceso. Se usan cuando
// no hay base de datos configurada.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/amazonia/internal/domain"
	"github.com/jhoicas/amazonia/internal/domain/entity"
	"github.com/jhoicas/amazonia/internal/domain/repository"
)

// IncompleteSaleRepository diario de ventas incompletas que vive mientras viva el proceso.
type IncompleteSaleRepository struct {
	mu      sync.RWMutex
	records map[string]*entity.IncompleteSale
	now     func() time.Time
}

// NewIncompleteSaleRepository crea el diario vacío.
func NewIncompleteSaleRepository() *IncompleteSaleRepository {
	return &IncompleteSaleRepository{records: make(map[string]*entity.IncompleteSale), now: time.Now}
}

var _ repository.IncompleteSaleRepository = (*IncompleteSaleRepository)(nil)

func (r *IncompleteSaleRepository) Save(_ context.Context, record *entity.IncompleteSale) error {
	if record == nil || record.ID == "" {
		return domain.ErrInvalidInput
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.records[record.ID]; exists {
		return domain.ErrDuplicate
	}
	cp := *record
	r.records[record.ID] = &cp
	return nil
}

// ListPending registros sin resolver, más antiguos primero.
func (r *IncompleteSaleRepository) ListPending(_ context.Context) ([]*entity.IncompleteSale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.IncompleteSale, 0, len(r.records))
	for _, rec := range r.records {
		if rec.ResolvedAt == nil {
			cp := *rec
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *IncompleteSaleRepository) Resolve(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[id]
	if !ok || rec.ResolvedAt != nil {
		return domain.ErrNotFound
	}
	now := r.now().UTC()
	rec.ResolvedAt = &now
	return nil
}
