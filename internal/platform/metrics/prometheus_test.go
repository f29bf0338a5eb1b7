package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_ObserveOperation(t *testing.T) {
	r := NewRecorder()

	r.ObserveOperation("record_sale", "", 10*time.Millisecond)
	r.ObserveOperation("record_sale", "", 20*time.Millisecond)
	r.ObserveOperation("record_sale", "insufficient_funds", time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.operationsTotal.WithLabelValues("record_sale", "")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.operationsTotal.WithLabelValues("record_sale", "insufficient_funds")))
	assert.Equal(t, 1, testutil.CollectAndCount(r.operationDuration))
}

func TestRecorder_SetBalance(t *testing.T) {
	r := NewRecorder()

	r.SetBalance("boveda_monte", "MXN", 400000)
	r.SetBalance("boveda_monte", "MXN", 1030000)

	assert.Equal(t, 1030000.0, testutil.ToFloat64(r.accountBalance.WithLabelValues("boveda_monte", "MXN")))
}

func TestRecorder_Handler(t *testing.T) {
	r := NewRecorder()
	r.ObserveLockWait("record_transfer", 2*time.Millisecond)
	r.SetBalance("azteca", "MXN", 150000)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.True(t, strings.Contains(body, MetricLockWaitSeconds+"_count"))
	assert.True(t, strings.Contains(body, `treasury_account_balance{account="azteca",currency="MXN"} 150000`))
	assert.True(t, strings.Contains(body, "go_goroutines"))
}
