package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/amazonia/internal/application/dto"
	"github.com/jhoicas/amazonia/internal/application/state"
	"github.com/jhoicas/amazonia/internal/domain"
	"github.com/jhoicas/amazonia/internal/domain/entity"
	"github.com/jhoicas/amazonia/internal/domain/repository"
)

// ResetPhrase frase que hay que escribir para confirmar el reinicio total.
const ResetPhrase = "REINICIAR"

// maxInFlight peticiones simultáneas durante el borrado y la recreación masiva.
const maxInFlight = 16

// UseCase exportación, importación y reinicio del conjunto completo de datos.
type UseCase struct {
	raw      repository.RawRepository
	metadata repository.MetadataRepository
	state    state.Provider
	log      zerolog.Logger
	now      func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(raw repository.RawRepository, metadata repository.MetadataRepository, st state.Provider, log zerolog.Logger) *UseCase {
	return &UseCase{raw: raw, metadata: metadata, state: st, log: log, now: time.Now}
}

// Export serializa el snapshot vigente (sangría de 2 espacios) y devuelve el nombre de archivo.
func (uc *UseCase) Export() ([]byte, string, error) {
	snap := uc.state.Snapshot()
	doc := exportDocument{
		Products:   nonNil(snap.Products),
		Clients:    nonNil(snap.Clients),
		Sales:      nonNil(snap.Sales),
		Metadata:   snap.Metadata,
		Categories: nonNil(snap.Categories),
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, "", fmt.Errorf("serializar respaldo: %w", err)
	}
	return data, Filename(uc.now()), nil
}

// Import reemplaza todos los datos del backend por los del archivo. El archivo se
// valida completo antes de borrar nada; un archivo inválido no produce peticiones.
func (uc *UseCase) Import(ctx context.Context, data []byte) (*dto.ImportResponse, error) {
	doc, err := Parse(data)
	if err != nil {
		return nil, err
	}

	if err := uc.deleteAll(ctx); err != nil {
		return nil, fmt.Errorf("importar: borrar datos actuales: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxInFlight)
	for _, c := range repository.Collections {
		for _, rec := range doc.Records[c] {
			g.Go(func() error {
				return uc.raw.CreateRaw(gctx, c, rec)
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("importar: recrear registros: %w", err)
	}

	if err := uc.raw.UpdateMetadataRaw(ctx, doc.Metadata); err != nil {
		return nil, fmt.Errorf("importar: metadata: %w", err)
	}

	res := &dto.ImportResponse{
		Products:   doc.Count(repository.CollectionProducts),
		Clients:    doc.Count(repository.CollectionClients),
		Sales:      doc.Count(repository.CollectionSales),
		Categories: doc.Count(repository.CollectionCategories),
	}
	uc.log.Info().
		Int("productos", res.Products).Int("clientes", res.Clients).
		Int("ventas", res.Sales).Int("categorias", res.Categories).
		Msg("respaldo importado")
	state.ReloadAfter(ctx, uc.state, uc.log)
	return res, nil
}

// Reset borra todos los registros y deja el consecutivo de facturas en 0.
// phrase debe ser exactamente ResetPhrase.
func (uc *UseCase) Reset(ctx context.Context, phrase string) error {
	if phrase != ResetPhrase {
		return domain.NewValidationError(domain.ErrConfirmationMismatch, fmt.Sprintf("escribe %q para confirmar", ResetPhrase))
	}
	if err := uc.deleteAll(ctx); err != nil {
		return fmt.Errorf("reiniciar: %w", err)
	}
	if err := uc.metadata.SetLastInvoice(ctx, 0); err != nil {
		return fmt.Errorf("reiniciar: metadata: %w", err)
	}
	uc.log.Warn().Msg("aplicación reiniciada: todos los datos fueron borrados")
	state.ReloadAfter(ctx, uc.state, uc.log)
	return nil
}

// deleteAll borra en paralelo cada registro en caché de las cuatro colecciones.
func (uc *UseCase) deleteAll(ctx context.Context) error {
	snap := uc.state.Snapshot()
	ids := map[repository.Collection][]entity.ID{}
	for _, p := range snap.Products {
		ids[repository.CollectionProducts] = append(ids[repository.CollectionProducts], p.ID)
	}
	for _, c := range snap.Clients {
		ids[repository.CollectionClients] = append(ids[repository.CollectionClients], c.ID)
	}
	for _, s := range snap.Sales {
		ids[repository.CollectionSales] = append(ids[repository.CollectionSales], s.ID)
	}
	for _, c := range snap.Categories {
		ids[repository.CollectionCategories] = append(ids[repository.CollectionCategories], c.ID)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxInFlight)
	for _, c := range repository.Collections {
		for _, id := range ids[c] {
			g.Go(func() error {
				return uc.raw.Delete(gctx, c, id)
			})
		}
	}
	return g.Wait()
}
