package metrics_test

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/amazonia/internal/application/sales"
	"github.com/jhoicas/amazonia/internal/infrastructure/metrics"
)

func TestMetrics_Observe(t *testing.T) {
	m := metrics.New("amazonia")

	m.ObserveRequest("GET", "productos", 200, 15*time.Millisecond)
	m.ObserveRequest("GET", "productos", 200, 5*time.Millisecond)
	m.ObserveRequest("PATCH", "productos", 0, time.Second)
	m.ObserveSale(sales.OutcomeRegistered, "")

	n, err := testutil.GatherAndCount(m.Registry(), "amazonia_backend_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n, "una serie por combinación de etiquetas")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, _ := io.ReadAll(rec.Body)
	assert.Contains(t, string(body), `amazonia_backend_requests_total{method="GET",resource="productos",status="200"} 2`)
	assert.Contains(t, string(body), `amazonia_sales_total{outcome="registrada",step=""} 1`)
}
