// Package resttest provee un backend CRUD en memoria (estilo json-server) para
// probar los componentes que consumen la API sin un servidor real.
package resttest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"
)

// Request petición recibida por el backend falso.
type Request struct {
	Method string
	Path   string
	Body   map[string]any
}

// Backend servidor httptest con colecciones en memoria, registro de peticiones e
// inyección de fallas.
type Backend struct {
	Server *httptest.Server

	mu          sync.Mutex
	collections map[string][]map[string]any
	metadata    map[string]any
	requests    []Request
	failures    []failure
}

type failure struct {
	method string
	path   string
	status int
	times  int // 0 = siempre
	skip   int // peticiones que pasan antes de empezar a fallar
}

// New arranca el backend y lo cierra al terminar el test.
func New(t testing.TB) *Backend {
	t.Helper()
	b := &Backend{
		collections: map[string][]map[string]any{
			"productos":  {},
			"clientes":   {},
			"ventas":     {},
			"categorias": {},
		},
		metadata: map[string]any{"ultimaFactura": float64(0)},
	}
	b.Server = httptest.NewServer(http.HandlerFunc(b.serve))
	t.Cleanup(b.Server.Close)
	return b
}

// URL base del backend.
func (b *Backend) URL() string { return b.Server.URL }

// Seed agrega registros (cualquier valor serializable a objeto JSON) a una colección.
func (b *Backend) Seed(collection string, records ...any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, r := range records {
		b.collections[collection] = append(b.collections[collection], toMap(r))
	}
}

// SetLastInvoice fija ultimaFactura.
func (b *Backend) SetLastInvoice(n int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.metadata["ultimaFactura"] = float64(n)
}

// Metadata copia del registro de metadata.
func (b *Backend) Metadata() map[string]any {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make(map[string]any, len(b.metadata))
	for k, v := range b.metadata {
		out[k] = v
	}
	return out
}

// Records copia de los registros de una colección.
func (b *Backend) Records(collection string) []map[string]any {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]map[string]any, len(b.collections[collection]))
	copy(out, b.collections[collection])
	return out
}

// Record registro por id, nil si no existe.
func (b *Backend) Record(collection, id string) map[string]any {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, r := range b.collections[collection] {
		if idOf(r) == id {
			return r
		}
	}
	return nil
}

// Fail hace que method+path responda status. times 0 = siempre; n = solo las n primeras veces.
func (b *Backend) Fail(method, path string, status, times int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures = append(b.failures, failure{method: method, path: "/" + strings.Trim(path, "/"), status: status, times: times})
}

// FailAfter deja pasar las primeras skip peticiones a method+path y luego responde status siempre.
func (b *Backend) FailAfter(method, path string, status, skip int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures = append(b.failures, failure{method: method, path: "/" + strings.Trim(path, "/"), status: status, skip: skip})
}

// Requests peticiones recibidas en orden de llegada.
func (b *Backend) Requests() []Request {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Request, len(b.requests))
	copy(out, b.requests)
	return out
}

// Mutations peticiones distintas de GET.
func (b *Backend) Mutations() []Request {
	var out []Request
	for _, r := range b.Requests() {
		if r.Method != http.MethodGet {
			out = append(out, r)
		}
	}
	return out
}

// Count peticiones con method cuyo path empieza por prefix.
func (b *Backend) Count(method, prefix string) int {
	prefix = "/" + strings.Trim(prefix, "/")
	n := 0
	for _, r := range b.Requests() {
		if r.Method == method && strings.HasPrefix(r.Path, prefix) {
			n++
		}
	}
	return n
}

// ResetRequests limpia el registro de peticiones.
func (b *Backend) ResetRequests() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.requests = nil
}

func (b *Backend) serve(w http.ResponseWriter, r *http.Request) {
	raw, _ := io.ReadAll(r.Body)
	var body map[string]any
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &body)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.requests = append(b.requests, Request{Method: r.Method, Path: r.URL.Path, Body: body})

	if status := b.injectedFailure(r.Method, r.URL.Path); status != 0 {
		http.Error(w, "falla inyectada", status)
		return
	}

	parts := strings.SplitN(strings.Trim(r.URL.Path, "/"), "/", 2)
	name := parts[0]

	if name == "metadata" {
		switch r.Method {
		case http.MethodGet:
			writeJSON(w, http.StatusOK, b.metadata)
		case http.MethodPatch:
			for k, v := range body {
				b.metadata[k] = v
			}
			writeJSON(w, http.StatusOK, b.metadata)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
		return
	}

	coll, ok := b.collections[name]
	if !ok {
		http.NotFound(w, r)
		return
	}

	if len(parts) == 1 {
		switch r.Method {
		case http.MethodGet:
			writeJSON(w, http.StatusOK, coll)
		case http.MethodPost:
			if body == nil {
				http.Error(w, "cuerpo inválido", http.StatusBadRequest)
				return
			}
			if _, has := body["id"]; !has || body["id"] == nil {
				body["id"] = nextID(coll)
			}
			b.collections[name] = append(coll, body)
			writeJSON(w, http.StatusCreated, body)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
		return
	}

	id := parts[1]
	idx := -1
	for i, rec := range coll {
		if idOf(rec) == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		http.NotFound(w, r)
		return
	}
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, coll[idx])
	case http.MethodPatch:
		updated := make(map[string]any, len(coll[idx]))
		for k, v := range coll[idx] {
			updated[k] = v
		}
		for k, v := range body {
			updated[k] = v
		}
		coll[idx] = updated
		writeJSON(w, http.StatusOK, updated)
	case http.MethodDelete:
		b.collections[name] = append(coll[:idx:idx], coll[idx+1:]...)
		writeJSON(w, http.StatusOK, map[string]any{})
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (b *Backend) injectedFailure(method, path string) int {
	for i := range b.failures {
		f := &b.failures[i]
		if f.method != method || f.path != path {
			continue
		}
		if f.times < 0 {
			continue
		}
		if f.skip > 0 {
			f.skip--
			continue
		}
		if f.times > 0 {
			f.times--
			if f.times == 0 {
				f.times = -1
			}
		}
		return f.status
	}
	return 0
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func idOf(rec map[string]any) string {
	switch v := rec["id"].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

func nextID(coll []map[string]any) float64 {
	ids := make([]float64, 0, len(coll))
	for _, rec := range coll {
		if n, err := strconv.ParseFloat(idOf(rec), 64); err == nil {
			ids = append(ids, n)
		}
	}
	if len(ids) == 0 {
		return 1
	}
	sort.Float64s(ids)
	return ids[len(ids)-1] + 1
}

func toMap(v any) map[string]any {
	raw, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		panic(err)
	}
	return m
}
