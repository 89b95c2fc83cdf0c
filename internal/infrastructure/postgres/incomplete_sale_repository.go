package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/amazonia/internal/domain"
	"github.com/jhoicas/amazonia/internal/domain/entity"
	"github.com/jhoicas/amazonia/internal/domain/repository"
)

var _ repository.IncompleteSaleRepository = (*IncompleteSaleRepo)(nil)

// IncompleteSaleRepo diario durable de ventas incompletas (usable con pool o tx).
type IncompleteSaleRepo struct {
	q Querier
}

// NewIncompleteSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewIncompleteSaleRepository(q Querier) *IncompleteSaleRepo {
	return &IncompleteSaleRepo{q: q}
}

// Save persiste una marca nueva. Un id repetido devuelve domain.ErrDuplicate.
func (r *IncompleteSaleRepo) Save(ctx context.Context, rec *entity.IncompleteSale) error {
	if rec == nil || rec.ID == "" {
		return domain.ErrInvalidInput
	}
	query := `
		INSERT INTO incomplete_sales
			(id, sale_id, client_id, invoice, total, items, failed_step, cause,
			 pending_stock, sale_created, created_at, resolved_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		rec.ID, rec.SaleID.String(), rec.ClientID.String(), rec.Invoice, rec.Total,
		nonNilItems(rec.Items), rec.FailedStep, rec.Cause,
		nonNilRestores(rec.PendingStock), rec.SaleCreated, rec.CreatedAt, rec.ResolvedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert incomplete_sale: %w", err)
	}
	return nil
}

// ListPending marcas sin resolver, más antiguas primero.
func (r *IncompleteSaleRepo) ListPending(ctx context.Context) ([]*entity.IncompleteSale, error) {
	query := `
		SELECT id, sale_id, client_id, invoice, total, items, failed_step, cause,
		       pending_stock, sale_created, created_at, resolved_at
		FROM incomplete_sales
		WHERE resolved_at IS NULL
		ORDER BY created_at`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list incomplete_sales: %w", err)
	}
	defer rows.Close()

	out := make([]*entity.IncompleteSale, 0)
	for rows.Next() {
		var (
			rec              entity.IncompleteSale
			saleID, clientID string
		)
		if err := rows.Scan(
			&rec.ID, &saleID, &clientID, &rec.Invoice, &rec.Total, &rec.Items, &rec.FailedStep, &rec.Cause,
			&rec.PendingStock, &rec.SaleCreated, &rec.CreatedAt, &rec.ResolvedAt,
		); err != nil {
			return nil, fmt.Errorf("scan incomplete_sale: %w", err)
		}
		rec.SaleID = entity.ID(saleID)
		rec.ClientID = entity.ID(clientID)
		out = append(out, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list incomplete_sales: %w", err)
	}
	return out, nil
}

// Resolve marca como conciliada una venta pendiente.
func (r *IncompleteSaleRepo) Resolve(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE incomplete_sales SET resolved_at = now() WHERE id = $1 AND resolved_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("resolve incomplete_sale: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func nonNilItems(s []entity.SaleItem) []entity.SaleItem {
	if s == nil {
		return []entity.SaleItem{}
	}
	return s
}

func nonNilRestores(s []entity.StockRestore) []entity.StockRestore {
	if s == nil {
		return []entity.StockRestore{}
	}
	return s
}
