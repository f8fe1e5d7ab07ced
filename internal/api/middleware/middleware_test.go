package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdmc-web/envsettings/internal/api/middleware"
	"github.com/sdmc-web/envsettings/internal/api/shared"
	"github.com/sdmc-web/envsettings/internal/platform/logger"
	"github.com/sdmc-web/envsettings/internal/settings"
)

func TestTraceMiddleware(t *testing.T) {
	log, buf := logger.GetTestLogger(t)

	var traceID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID = shared.GetTraceID(r.Context())
		logger.FromContext(r.Context()).Info("inside handler")
	})

	rec := httptest.NewRecorder()
	middleware.NewTraceMiddleware(log)(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/settings", nil))

	require.Len(t, traceID, 36, "trace id is a UUID string")
	logger.AssertLogContains(t, buf, "request started")
	logger.AssertLogField(t, buf, "trace_id", traceID)
	logger.AssertLogContains(t, buf, "inside handler")
}

func TestTrustedHostsMiddleware(t *testing.T) {
	hosts, err := settings.CompileHosts([]string{`^stage\.loc$`})
	require.NoError(t, err)

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusNoContent)
	})
	h := middleware.TrustedHosts(hosts)(next)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Host = "stage.loc:443"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.True(t, called)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	called = false
	req.Host = "other.loc"
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.False(t, called)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), middleware.UntrustedHostMessage)
}
