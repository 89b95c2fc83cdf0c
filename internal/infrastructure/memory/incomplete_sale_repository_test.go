package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/amazonia/internal/domain"
	"github.com/jhoicas/amazonia/internal/domain/entity"
	"github.com/jhoicas/amazonia/internal/infrastructure/memory"
)

func TestIncompleteSaleRepository(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewIncompleteSaleRepository()
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Save(ctx, &entity.IncompleteSale{ID: "b", SaleID: "VTA-0002", CreatedAt: base.Add(time.Minute)}))
	require.NoError(t, repo.Save(ctx, &entity.IncompleteSale{ID: "a", SaleID: "VTA-0001", CreatedAt: base}))
	assert.ErrorIs(t, repo.Save(ctx, &entity.IncompleteSale{ID: "a"}), domain.ErrDuplicate)
	assert.ErrorIs(t, repo.Save(ctx, &entity.IncompleteSale{}), domain.ErrInvalidInput)

	pending, err := repo.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, entity.ID("VTA-0001"), pending[0].SaleID, "más antiguo primero")

	require.NoError(t, repo.Resolve(ctx, "a"))
	assert.ErrorIs(t, repo.Resolve(ctx, "a"), domain.ErrNotFound)
	assert.ErrorIs(t, repo.Resolve(ctx, "zzz"), domain.ErrNotFound)

	pending, err = repo.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "b", pending[0].ID)
}
