package sales

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/amazonia/internal/application/state"
	"github.com/jhoicas/amazonia/internal/domain"
	"github.com/jhoicas/amazonia/internal/domain/entity"
	"github.com/jhoicas/amazonia/internal/domain/repository"
)

// RegisterSaleUseCase convierte el carrito en una venta persistida.
//
// El backend no ofrece transacciones, así que el registro se ejecuta como saga:
//  1. descuento de stock por línea (en paralelo)
//  2. POST /ventas con id VTA-xxxx = ultimaFactura + 1
//  3. PATCH /metadata con el nuevo consecutivo
//
// Si un paso falla se revierten los anteriores en orden inverso. Si la reversión
// también falla queda una marca en el diario de ventas incompletas.
//
// Los registros se serializan: el consecutivo y el stock salen de la caché, así que
// dos ventas simultáneas escribirían la misma factura.
type RegisterSaleUseCase struct {
	mu           sync.Locker
	cart         *Cart
	state        state.Provider
	productRepo  repository.ProductRepository
	saleRepo     repository.SaleRepository
	metadataRepo repository.MetadataRepository
	journal      repository.IncompleteSaleRepository
	observer     SaleObserver
	log          zerolog.Logger
	now          func() time.Time
}

// NewRegisterSaleUseCase construye el caso de uso. observer puede ser nil.
func NewRegisterSaleUseCase(
	cart *Cart,
	st state.Provider,
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	metadataRepo repository.MetadataRepository,
	journal repository.IncompleteSaleRepository,
	observer SaleObserver,
	log zerolog.Logger,
) *RegisterSaleUseCase {
	if observer == nil {
		observer = nopObserver{}
	}
	return &RegisterSaleUseCase{
		mu:           &sync.Mutex{},
		cart:         cart,
		state:        st,
		productRepo:  productRepo,
		saleRepo:     saleRepo,
		metadataRepo: metadataRepo,
		journal:      journal,
		observer:     observer,
		log:          log,
		now:          time.Now,
	}
}

// WithStockLock comparte el candado con otros escritores de stock (ajustes manuales).
func (uc *RegisterSaleUseCase) WithStockLock(l sync.Locker) *RegisterSaleUseCase {
	uc.mu = l
	return uc
}

// Register registra la venta del carrito para el cliente indicado.
// Las validaciones (carrito vacío, cliente, stock) ocurren antes de cualquier llamada de red.
func (uc *RegisterSaleUseCase) Register(ctx context.Context, clientID entity.ID) (*entity.Sale, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	snap := uc.state.Snapshot()
	lines := uc.cart.Lines()

	if err := validate(snap, lines, clientID); err != nil {
		uc.observer.ObserveSale(OutcomeRejected, "")
		return nil, err
	}

	// Stock a escribir y stock a restaurar, tomados de la caché (no se relee el backend).
	decrements := make([]entity.StockRestore, len(lines))
	restores := make([]entity.StockRestore, len(lines))
	for i, l := range lines {
		cached := cachedStock(snap, l)
		decrements[i] = entity.StockRestore{ProductID: l.ProductID, Stock: cached - l.Quantity}
		restores[i] = entity.StockRestore{ProductID: l.ProductID, Stock: cached}
	}

	invoice := snap.Metadata.NextInvoice()
	items := make([]entity.SaleItem, len(lines))
	for i, l := range lines {
		items[i] = entity.SaleItem{ProductID: l.ProductID, Name: l.Name, Price: l.Price, Quantity: l.Quantity}
	}
	sale := &entity.Sale{
		ID:       entity.FormatSaleID(invoice),
		ClientID: clientID,
		Items:    items,
		Total:    linesTotal(lines),
		Date:     uc.now().UTC(),
	}
	logger := uc.log.With().Str("sale_id", sale.ID.String()).Int("factura", invoice).Logger()

	// ── 1. Descuento de stock ────────────────────────────────────────────────
	applied, err := uc.applyStock(ctx, decrements)
	if err != nil {
		return nil, uc.compensate(ctx, logger, sale, invoice, entity.SaleStepStock, err, restoresFor(applied, restores), false)
	}

	// ── 2. Venta ─────────────────────────────────────────────────────────────
	created, err := uc.saleRepo.Create(ctx, sale)
	if err != nil {
		return nil, uc.compensate(ctx, logger, sale, invoice, entity.SaleStepCreate, err, restores, false)
	}

	// ── 3. Consecutivo ───────────────────────────────────────────────────────
	if err := uc.metadataRepo.SetLastInvoice(ctx, invoice); err != nil {
		return nil, uc.compensate(ctx, logger, sale, invoice, entity.SaleStepMetadata, err, restores, true)
	}

	uc.cart.Clear()
	uc.observer.ObserveSale(OutcomeRegistered, "")
	logger.Info().Str("total", sale.Total.String()).Int("lineas", len(items)).Msg("venta registrada")
	state.ReloadAfter(ctx, uc.state, uc.log)
	return created, nil
}

func validate(snap *state.Snapshot, lines []CartLine, clientID entity.ID) error {
	if len(lines) == 0 {
		return domain.NewValidationError(domain.ErrEmptyCart, "")
	}
	if clientID.IsZero() {
		return domain.NewValidationError(domain.ErrClientRequired, "")
	}
	if _, ok := snap.Client(clientID); !ok {
		return domain.NewValidationError(domain.ErrClientRequired, "el cliente no existe")
	}
	for _, l := range lines {
		if l.Quantity <= 0 {
			return domain.NewValidationError(domain.ErrInvalidQuantity, l.Name)
		}
		if l.Quantity > cachedStock(snap, l) {
			return domain.NewValidationError(domain.ErrInsufficientStock, l.Name)
		}
	}
	return nil
}

// cachedStock stock vigente en el snapshot; si el producto ya no está, el capturado al agregarlo.
func cachedStock(snap *state.Snapshot, l CartLine) int {
	if p, ok := snap.Product(l.ProductID); ok {
		return p.Stock
	}
	return l.Stock
}

// applyStock lanza un PATCH por línea y espera a todos. Devuelve los productos
// cuyo PATCH se aplicó, también cuando alguno falla.
func (uc *RegisterSaleUseCase) applyStock(ctx context.Context, updates []entity.StockRestore) ([]entity.ID, error) {
	var (
		mu      sync.Mutex
		applied []entity.ID
		g       errgroup.Group
	)
	for _, u := range updates {
		g.Go(func() error {
			if err := uc.productRepo.UpdateStock(ctx, u.ProductID, u.Stock); err != nil {
				return fmt.Errorf("stock de %s: %w", u.ProductID, err)
			}
			mu.Lock()
			applied = append(applied, u.ProductID)
			mu.Unlock()
			return nil
		})
	}
	err := g.Wait()
	return applied, err
}

func restoresFor(ids []entity.ID, all []entity.StockRestore) []entity.StockRestore {
	out := make([]entity.StockRestore, 0, len(ids))
	for _, r := range all {
		for _, id := range ids {
			if r.ProductID == id {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

// compensate revierte lo aplicado: borra la venta si se creó y devuelve el stock.
// Se ejecuta aunque ctx haya sido cancelado.
func (uc *RegisterSaleUseCase) compensate(
	ctx context.Context,
	logger zerolog.Logger,
	sale *entity.Sale,
	invoice int,
	step string,
	cause error,
	restores []entity.StockRestore,
	saleCreated bool,
) error {
	logger.Error().Err(cause).Str("paso", step).Msg("registro de venta fallido, revirtiendo")
	cctx := context.WithoutCancel(ctx)

	var compErrs []error
	if saleCreated {
		if err := uc.saleRepo.Delete(cctx, sale.ID); err != nil {
			compErrs = append(compErrs, fmt.Errorf("eliminar venta: %w", err))
		} else {
			saleCreated = false
		}
	}

	pending := uc.restoreStock(cctx, restores)
	if len(pending) > 0 {
		compErrs = append(compErrs, fmt.Errorf("no se pudo restaurar el stock de %d producto(s)", len(pending)))
	}

	if len(compErrs) == 0 {
		uc.observer.ObserveSale(OutcomeCompensated, step)
		logger.Warn().Str("paso", step).Msg("venta revertida")
		if step != entity.SaleStepStock || len(restores) > 0 {
			state.ReloadAfter(cctx, uc.state, uc.log)
		}
		return &SagaError{Step: step, Compensated: true, Err: cause}
	}

	record := &entity.IncompleteSale{
		ID:           uuid.New().String(),
		SaleID:       sale.ID,
		ClientID:     sale.ClientID,
		Invoice:      invoice,
		Total:        sale.Total,
		Items:        sale.Items,
		FailedStep:   step,
		Cause:        errors.Join(append([]error{cause}, compErrs...)...).Error(),
		PendingStock: pending,
		SaleCreated:  saleCreated,
		CreatedAt:    uc.now().UTC(),
	}
	journalID := ""
	if uc.journal != nil {
		if err := uc.journal.Save(cctx, record); err != nil {
			logger.Error().Err(err).Msg("no se pudo guardar la marca de venta incompleta")
		} else {
			journalID = record.ID
		}
	}
	uc.observer.ObserveSale(OutcomeIncomplete, step)
	logger.Error().
		Str("paso", step).Str("journal_id", journalID).
		Int("stock_pendiente", len(pending)).Bool("venta_creada", saleCreated).
		Msg("venta incompleta: requiere conciliación manual")
	state.ReloadAfter(cctx, uc.state, uc.log)
	return &SagaError{Step: step, Compensated: false, JournalID: journalID, Err: cause}
}

// restoreStock devuelve los productos cuyo stock no se pudo restaurar.
func (uc *RegisterSaleUseCase) restoreStock(ctx context.Context, restores []entity.StockRestore) []entity.StockRestore {
	var (
		mu      sync.Mutex
		pending []entity.StockRestore
		wg      sync.WaitGroup
	)
	for _, r := range restores {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := uc.productRepo.UpdateStock(ctx, r.ProductID, r.Stock); err != nil {
				uc.log.Error().Err(err).Str("product_id", r.ProductID.String()).Int("stock", r.Stock).
					Msg("no se pudo restaurar stock")
				mu.Lock()
				pending = append(pending, r)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	return pending
}
