package postgres

import (
	"context"
	"fmt"
)

// incompleteSalesDDL tabla del diario. items y pending_stock guardan JSON con las
// mismas claves que el backend REST.
const incompleteSalesDDL = `
CREATE TABLE IF NOT EXISTS incomplete_sales (
	id            TEXT PRIMARY KEY,
	sale_id       TEXT          NOT NULL,
	client_id     TEXT          NOT NULL,
	invoice       INTEGER       NOT NULL,
	total         NUMERIC(18,2) NOT NULL,
	items         JSONB         NOT NULL DEFAULT '[]',
	failed_step   TEXT          NOT NULL,
	cause         TEXT          NOT NULL DEFAULT '',
	pending_stock JSONB         NOT NULL DEFAULT '[]',
	sale_created  BOOLEAN       NOT NULL DEFAULT FALSE,
	created_at    TIMESTAMPTZ   NOT NULL,
	resolved_at   TIMESTAMPTZ
);
CREATE INDEX IF NOT EXISTS incomplete_sales_pending_idx
	ON incomplete_sales (created_at) WHERE resolved_at IS NULL;`

// EnsureSchema crea la tabla del diario si no existe.
func EnsureSchema(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, incompleteSalesDDL); err != nil {
		return fmt.Errorf("crear esquema del diario: %w", err)
	}
	return nil
}
