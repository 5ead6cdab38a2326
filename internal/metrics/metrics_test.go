package metrics

import (
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordLogin(t *testing.T) {
	before := testutil.ToFloat64(LoginsTotal.WithLabelValues("ok"))
	RecordLogin(true)
	assert.Equal(t, before+1, testutil.ToFloat64(LoginsTotal.WithLabelValues("ok")))

	before = testutil.ToFloat64(LoginsTotal.WithLabelValues("denied"))
	RecordLogin(false)
	assert.Equal(t, before+1, testutil.ToFloat64(LoginsTotal.WithLabelValues("denied")))
}

func TestHandlerServesRegistry(t *testing.T) {
	EventsPublishedTotal.Inc()

	req := httptest.NewRequest("GET", "/metrics", nil)
	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, req)

	require.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "admingate_events_published_total")
}
