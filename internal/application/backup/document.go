// Package backup exporta e importa el conjunto completo de datos como un único
// documento JSON y permite reiniciar la aplicación.
package backup

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jhoicas/amazonia/internal/domain"
	"github.com/jhoicas/amazonia/internal/domain/entity"
	"github.com/jhoicas/amazonia/internal/domain/repository"
)

// Claves de primer nivel del documento de respaldo.
const (
	KeyProducts   = "productos"
	KeyClients    = "clientes"
	KeySales      = "ventas"
	KeyMetadata   = "metadata"
	KeyCategories = "categorias"
)

var requiredKeys = []string{KeyProducts, KeyClients, KeySales, KeyMetadata, KeyCategories}

// Filename nombre del archivo de respaldo para la fecha dada (UTC).
func Filename(t time.Time) string {
	return fmt.Sprintf("amazonia-backup-%s.json", t.UTC().Format("2006-01-02"))
}

// exportDocument conserva el orden de claves del archivo.
type exportDocument struct {
	Products   []entity.Product  `json:"productos"`
	Clients    []entity.Client   `json:"clientes"`
	Sales      []entity.Sale     `json:"ventas"`
	Metadata   entity.Metadata   `json:"metadata"`
	Categories []entity.Category `json:"categorias"`
}

// Document respaldo validado. Los registros se guardan tal cual vienen en el
// archivo para reenviarlos sin perder campos desconocidos.
type Document struct {
	Records  map[repository.Collection][]json.RawMessage
	Metadata json.RawMessage
}

// Count registros de la colección.
func (d *Document) Count(c repository.Collection) int {
	return len(d.Records[c])
}

// Parse valida el documento: las cinco claves deben existir y no ser null; las
// colecciones deben ser arreglos y metadata un objeto.
func Parse(data []byte) (*Document, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, domain.NewValidationError(domain.ErrInvalidBackup, "el archivo no es JSON válido")
	}
	for _, k := range requiredKeys {
		raw, ok := top[k]
		if !ok || isNull(raw) {
			return nil, domain.NewValidationError(domain.ErrInvalidBackup, fmt.Sprintf("falta la clave %q", k))
		}
	}

	doc := &Document{Records: make(map[repository.Collection][]json.RawMessage, len(repository.Collections))}
	for _, c := range repository.Collections {
		var records []json.RawMessage
		if err := json.Unmarshal(top[string(c)], &records); err != nil {
			return nil, domain.NewValidationError(domain.ErrInvalidBackup, fmt.Sprintf("%q debe ser una lista", c))
		}
		for _, r := range records {
			if !isObject(r) {
				return nil, domain.NewValidationError(domain.ErrInvalidBackup, fmt.Sprintf("%q contiene registros que no son objetos", c))
			}
		}
		doc.Records[c] = records
	}
	if !isObject(top[KeyMetadata]) {
		return nil, domain.NewValidationError(domain.ErrInvalidBackup, "\"metadata\" debe ser un objeto")
	}
	doc.Metadata = top[KeyMetadata]
	return doc, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func isObject(raw json.RawMessage) bool {
	t := bytes.TrimSpace(raw)
	return len(t) > 0 && t[0] == '{'
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
