package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// maxErrorBody límite del cuerpo que se conserva en un RequestError.
const maxErrorBody = 2048

// RequestObserver recibe una observación por cada llamada al backend (métricas).
type RequestObserver interface {
	ObserveRequest(method, resource string, status int, elapsed time.Duration)
}

type nopObserver struct{}

func (nopObserver) ObserveRequest(string, string, int, time.Duration) {}

// Options configuración del cliente de recursos.
type Options struct {
	BaseURL string
	// Timeout 0 = sin límite; la operación espera lo que tarde el backend.
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     zerolog.Logger
	Observer   RequestObserver
}

// Client cliente JSON genérico sobre la API CRUD del backend. No reintenta:
// cada falla se devuelve de inmediato al llamador.
type Client struct {
	httpClient *http.Client
	baseURL    string
	log        zerolog.Logger
	observer   RequestObserver
}

// NewClient crea el cliente de recursos.
func NewClient(opts Options) *Client {
	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: opts.Timeout}
	}
	obs := opts.Observer
	if obs == nil {
		obs = nopObserver{}
	}
	return &Client{
		httpClient: hc,
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		log:        opts.Logger,
		observer:   obs,
	}
}

// BaseURL URL base del backend.
func (c *Client) BaseURL() string { return c.baseURL }

// Do ejecuta la petición. body, si no es nil, se serializa como JSON.
// La respuesta se devuelve solo cuando declara Content-Type JSON; en otro caso nil.
func (c *Client) Do(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	url := c.baseURL + "/" + strings.TrimLeft(path, "/")

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("serializar cuerpo %s %s: %w", method, url, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("crear petición %s %s: %w", method, url, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	requestID := uuid.New().String()
	req.Header.Set("X-Request-ID", requestID)

	resource := resourceOf(path)
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		c.observer.ObserveRequest(method, resource, 0, elapsed)
		c.log.Error().Err(err).
			Str("method", method).Str("url", url).Str("request_id", requestID).
			Msg("backend inalcanzable")
		return nil, &NetworkError{Method: method, URL: url, Cause: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	c.observer.ObserveRequest(method, resource, resp.StatusCode, elapsed)
	if err != nil {
		c.log.Error().Err(err).Str("method", method).Str("url", url).Str("request_id", requestID).
			Msg("error leyendo respuesta")
		return nil, &NetworkError{Method: method, URL: url, Cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if len(data) > maxErrorBody {
			data = data[:maxErrorBody]
		}
		c.log.Error().
			Str("method", method).Str("url", url).Str("request_id", requestID).
			Int("status", resp.StatusCode).Dur("elapsed", elapsed).
			Msg("backend respondió con error")
		return nil, &RequestError{Method: method, URL: url, Status: resp.StatusCode, Body: string(data)}
	}

	c.log.Debug().
		Str("method", method).Str("url", url).Str("request_id", requestID).
		Int("status", resp.StatusCode).Dur("elapsed", elapsed).
		Msg("backend ok")

	if !strings.Contains(resp.Header.Get("Content-Type"), "application/json") || len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	return json.RawMessage(data), nil
}

// Get GET path.
func (c *Client) Get(ctx context.Context, path string) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodGet, path, nil)
}

// Post POST path con body JSON.
func (c *Client) Post(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodPost, path, body)
}

// Patch PATCH path con body JSON (actualización parcial).
func (c *Client) Patch(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.Do(ctx, http.MethodPatch, path, body)
}

// Delete DELETE path.
func (c *Client) Delete(ctx context.Context, path string) error {
	_, err := c.Do(ctx, http.MethodDelete, path, nil)
	return err
}

// resourceOf primer segmento del path ("productos/3" → "productos"), etiqueta de métricas.
func resourceOf(path string) string {
	p := strings.TrimLeft(path, "/")
	if i := strings.IndexAny(p, "/?"); i >= 0 {
		p = p[:i]
	}
	return p
}

// decode deserializa una respuesta JSON. Una respuesta vacía deja out intacto.
func decode[T any](raw json.RawMessage, out *T) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("respuesta inválida del backend: %w", err)
	}
	return nil
}
