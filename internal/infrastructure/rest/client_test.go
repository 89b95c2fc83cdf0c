package rest_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/amazonia/internal/infrastructure/rest"
)

type observation struct {
	method, resource string
	status           int
}

type recordingObserver struct {
	mu  sync.Mutex
	obs []observation
}

func (r *recordingObserver) ObserveRequest(method, resource string, status int, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.obs = append(r.obs, observation{method, resource, status})
}

func newClient(url string, obs rest.RequestObserver) *rest.Client {
	return rest.NewClient(rest.Options{BaseURL: url, Logger: zerolog.Nop(), Observer: obs})
}

func TestClient_Do_EnviaJSONYDecodifica(t *testing.T) {
	var gotContentType, gotRequestID string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotRequestID = r.Header.Get("X-Request-ID")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":1,"nombre":"Café"}`))
	}))
	defer srv.Close()

	obs := &recordingObserver{}
	raw, err := newClient(srv.URL+"/", obs).Post(context.Background(), "/productos", map[string]string{"nombre": "Café"})
	require.NoError(t, err)

	assert.Equal(t, "application/json", gotContentType)
	assert.NotEmpty(t, gotRequestID)
	assert.Equal(t, "Café", gotBody["nombre"])
	assert.JSONEq(t, `{"id":1,"nombre":"Café"}`, string(raw))
	require.Len(t, obs.obs, 1)
	assert.Equal(t, observation{"POST", "productos", 201}, obs.obs[0])
}

func TestClient_Do_SinContentTypeJSON_DevuelveNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	raw, err := newClient(srv.URL, nil).Get(context.Background(), "productos")
	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestClient_Do_DeleteSinCuerpo(t *testing.T) {
	var gotContentType string
	var gotLen int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		b, _ := io.ReadAll(r.Body)
		gotLen = len(b)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	err := newClient(srv.URL, nil).Delete(context.Background(), "productos/1")
	require.NoError(t, err)
	assert.Empty(t, gotContentType, "sin cuerpo no se declara Content-Type")
	assert.Zero(t, gotLen)
}

func TestClient_Do_StatusNo2xx_RequestError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no existe", http.StatusNotFound)
	}))
	defer srv.Close()

	obs := &recordingObserver{}
	_, err := newClient(srv.URL, obs).Patch(context.Background(), "productos/9", map[string]int{"stock": 1})
	require.Error(t, err)

	var reqErr *rest.RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, http.StatusNotFound, reqErr.Status)
	assert.Equal(t, http.MethodPatch, reqErr.Method)
	assert.Contains(t, reqErr.Body, "no existe")
	assert.True(t, rest.IsNotFound(err))
	assert.True(t, rest.IsBackendError(err))
	assert.Equal(t, 404, obs.obs[0].status)
}

func TestClient_Do_FallaDeTransporte_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	obs := &recordingObserver{}
	_, err := newClient(url, obs).Get(context.Background(), "productos")
	require.Error(t, err)

	var netErr *rest.NetworkError
	require.True(t, errors.As(err, &netErr))
	assert.NotNil(t, errors.Unwrap(err))
	assert.True(t, rest.IsBackendError(err))
	assert.False(t, rest.IsNotFound(err))
	assert.Equal(t, 0, obs.obs[0].status)
}

func TestClient_Do_SinReintentos(t *testing.T) {
	var mu sync.Mutex
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		calls++
		mu.Unlock()
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := newClient(srv.URL, nil).Get(context.Background(), "ventas")
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestClient_Do_ContextoCancelado(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newClient(srv.URL, nil).Get(ctx, "ventas")

	var netErr *rest.NetworkError
	require.True(t, errors.As(err, &netErr))
	assert.True(t, errors.Is(err, context.Canceled))
}
