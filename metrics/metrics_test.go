package metrics

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.Mutation("delete", nil)
	m.Mutation("delete", errors.New("boom"))
	m.Mutation("status", nil)
	m.Login(true)
	m.Login(false)
	m.Login(false)
	m.OrdersLoaded(7)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.mutations.WithLabelValues("delete", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.mutations.WithLabelValues("delete", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.mutations.WithLabelValues("status", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.logins.WithLabelValues("ok")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.logins.WithLabelValues("rejected")))
	assert.Equal(t, 7.0, testutil.ToFloat64(m.ordersLoaded))
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.ObserveFetch(150*time.Millisecond, nil)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `admin_order_fetch_duration_seconds_count{result="ok"} 1`)
	assert.Contains(t, string(body), "admin_orders_loaded")
}
