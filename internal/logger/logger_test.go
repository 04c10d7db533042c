package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew_Level(t *testing.T) {
	log, err := New(Config{Level: "warn", Environment: "production", ServiceName: "storefront"})
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zap.InfoLevel))
	assert.True(t, log.Core().Enabled(zap.WarnLevel))

	log, err = New(Config{Level: "bogus"})
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zap.InfoLevel))
}

func TestMiddleware(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	handler := chimw.RequestID(Middleware(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/customers", nil))

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "/customers", fields["path"])
	assert.Equal(t, int64(http.StatusCreated), fields["status"])
	assert.NotEmpty(t, fields["request_id"])
}
