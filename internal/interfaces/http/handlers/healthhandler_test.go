package handlers

import (
	"context"
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shop/internal/interfaces/http/handlers/testutil"
	"shop/internal/shared/utils"
)

type stubPinger struct {
	err error
}

func (s stubPinger) PingContext(ctx context.Context) error {
	return s.err
}

func TestHealthHandler_HealthCheck(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		h := NewHealthHandler(stubPinger{}, testutil.NewMockLogger())
		c, w := testutil.NewTestContext(http.MethodGet, "/health", nil)

		h.HealthCheck(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var body utils.HealthResponse
		require.NoError(t, testutil.ParseResponse(w, &body))
		assert.Equal(t, "ok", body.Status)
		assert.NotEmpty(t, body.Version)
	})

	t.Run("database down", func(t *testing.T) {
		h := NewHealthHandler(stubPinger{err: stderrors.New("refused")}, testutil.NewMockLogger())
		c, w := testutil.NewTestContext(http.MethodGet, "/health", nil)

		h.HealthCheck(c)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
