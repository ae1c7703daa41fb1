package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/yanqian/styling-advisor/internal/domain/styling"
	"github.com/yanqian/styling-advisor/internal/infra/config"
	apperrors "github.com/yanqian/styling-advisor/pkg/errors"
)

func TestErrorMiddlewareMapsAppErrorCodes(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{"invalid measurement", apperrors.Wrap(styling.CodeInvalidMeasurement, "hips must be positive", nil), http.StatusBadRequest, styling.CodeInvalidMeasurement, "hips must be positive"},
		{"invalid input", apperrors.Wrap(styling.CodeInvalidInput, "unknown unit", nil), http.StatusBadRequest, styling.CodeInvalidInput, "unknown unit"},
		{"invalid category", apperrors.Wrap(styling.CodeInvalidCategory, "unknown shape", nil), http.StatusBadRequest, styling.CodeInvalidCategory, "unknown shape"},
		{"schema mismatch", apperrors.Wrap(styling.CodeSchemaMismatch, "layout changed", styling.ErrSchemaMismatch), http.StatusConflict, styling.CodeSchemaMismatch, "layout changed"},
		{"unavailable", apperrors.Wrap(styling.CodeUnavailable, "weather down", errors.New("timeout")), http.StatusBadGateway, styling.CodeUnavailable, "weather down"},
		{"persistence", apperrors.Wrap(styling.CodePersistence, "failed to save outfit", errors.New("disk full")), http.StatusInternalServerError, styling.CodePersistence, "failed to save outfit"},
		{"unknown code", apperrors.Wrap("quota", "over quota", nil), http.StatusInternalServerError, "quota", "over quota"},
		{"wrapped app error", errors.Join(errors.New("ctx"), apperrors.Wrap(styling.CodeSchemaMismatch, "layout changed", nil)), http.StatusConflict, styling.CodeSchemaMismatch, "layout changed"},
		{"plain error", errors.New("secret dsn"), http.StatusInternalServerError, codeInternal, "something went wrong"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := gin.New()
			router.Use(errorHandlingMiddleware(newTestLogger()))
			router.GET("/", func(c *gin.Context) { fail(c, tc.err) })

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
			require.Equal(t, tc.status, rec.Code)

			body := decodeErrorBody(t, rec.Body.Bytes())
			require.Equal(t, tc.code, body["error"]["code"])
			require.Equal(t, tc.message, body["error"]["message"])
		})
	}
}

func TestClientLimiterRefills(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	limiter := newClientLimiter(config.RateLimitConfig{Enabled: true, RequestsPerMinute: 60, Burst: 2})
	limiter.now = func() time.Time { return now }

	require.True(t, limiter.allow("10.0.0.1"))
	require.True(t, limiter.allow("10.0.0.1"))
	require.False(t, limiter.allow("10.0.0.1"))
	require.True(t, limiter.allow("10.0.0.2"))

	now = now.Add(time.Second)
	require.True(t, limiter.allow("10.0.0.1"))
	require.False(t, limiter.allow("10.0.0.1"))

	now = now.Add(10 * time.Minute)
	require.True(t, limiter.allow("10.0.0.3"))
	require.Len(t, limiter.buckets, 1)
}
