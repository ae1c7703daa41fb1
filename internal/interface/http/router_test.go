package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/styling-advisor/internal/domain/styling"
	"github.com/yanqian/styling-advisor/internal/infra/config"
	apperrors "github.com/yanqian/styling-advisor/pkg/errors"
)

func TestRouter_RecommendSuccess(t *testing.T) {
	svc := &stubAdvisor{
		recommendFn: func(ctx context.Context, req styling.Request) (styling.Response, error) {
			require.Equal(t, 37.0, req.Bust)
			require.Equal(t, styling.UnitInches, req.Unit)
			require.Equal(t, "gala", req.Occasion)
			require.True(t, req.Save)
			return styling.Response{
				Profile: styling.ProfileView{Size: styling.SizeSmall, Shape: styling.ShapeRectangle},
				Saved:   true,
			}, nil
		},
	}

	recorder := performJSON(http.MethodPost, "/api/v1/recommendations",
		`{"bust":37,"waist":29,"hips":37,"unit":"inches","occasion":"gala","save":true}`, newRouterUnderTest(t, svc, config.RetryConfig{}))
	require.Equal(t, http.StatusOK, recorder.Code)

	var got styling.Response
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.Equal(t, styling.ShapeRectangle, got.Profile.Shape)
	require.True(t, got.Saved)
}

func TestRouter_RecommendInvalidJSON(t *testing.T) {
	recorder := performJSON(http.MethodPost, "/api/v1/recommendations", `{"bust":"wide"}`, newRouterUnderTest(t, &stubAdvisor{}, config.RetryConfig{}))
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	errBody := decodeErrorBody(t, recorder.Body.Bytes())
	require.Equal(t, "invalid_request", errBody["error"]["code"])
	require.NotEmpty(t, errBody["error"]["message"])
}

func TestRouter_RecommendMapsDomainErrors(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{apperrors.Wrap(styling.CodeInvalidMeasurement, "waist is required", nil), http.StatusBadRequest, styling.CodeInvalidMeasurement},
		{apperrors.Wrap(styling.CodeInvalidInput, "undertone must be one of Warm, Cool, Neutral", nil), http.StatusBadRequest, styling.CodeInvalidInput},
		{apperrors.Wrap(styling.CodeSchemaMismatch, "outfit record does not match the stored layout", styling.ErrSchemaMismatch), http.StatusConflict, styling.CodeSchemaMismatch},
		{apperrors.Wrap(styling.CodePersistence, "failed to save outfit", errors.New("disk full")), http.StatusInternalServerError, styling.CodePersistence},
		{apperrors.Wrap(styling.CodeUnavailable, "weather provider unavailable", errors.New("dial tcp")), http.StatusBadGateway, styling.CodeUnavailable},
		{apperrors.Wrap(styling.CodeInvalidCategory, "size must be one of Small, Medium, Large", nil), http.StatusBadRequest, styling.CodeInvalidCategory},
		{errors.New("disk full"), http.StatusInternalServerError, "internal_error"},
	}
	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			svc := &stubAdvisor{
				recommendFn: func(context.Context, styling.Request) (styling.Response, error) {
					return styling.Response{}, tc.err
				},
			}
			recorder := performJSON(http.MethodPost, "/api/v1/recommendations", `{"bust":37}`, newRouterUnderTest(t, svc, config.RetryConfig{}))
			require.Equal(t, tc.status, recorder.Code)

			errBody := decodeErrorBody(t, recorder.Body.Bytes())
			require.Equal(t, tc.code, errBody["error"]["code"])
			require.NotContains(t, errBody["error"]["message"], "disk full")
		})
	}
}

func TestRouter_RecommendForm(t *testing.T) {
	svc := &stubAdvisor{
		recommendFn: func(ctx context.Context, req styling.Request) (styling.Response, error) {
			require.Equal(t, 94.0, req.Bust)
			require.Equal(t, 96.0, req.HighHip)
			require.Equal(t, styling.UnitCentimeters, req.Unit)
			require.Equal(t, "Warm", req.Undertone)
			require.True(t, req.IncludeAdvice)
			require.False(t, req.Save)
			return styling.Response{}, nil
		},
	}
	form := url.Values{
		"bust": {"94"}, "waist": {"74"}, "hips": {"100"}, "high_hip": {"96"},
		"unit": {"cm"}, "undertone": {"Warm"}, "includeAdvice": {"on"},
	}
	recorder := performForm("/api/v1/recommendations/form", form, newRouterUnderTest(t, svc, config.RetryConfig{}))
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Equal(t, 1, svc.recommendCalls)
}

func TestRouter_RecommendFormRejectsText(t *testing.T) {
	svc := &stubAdvisor{}
	form := url.Values{"bust": {"thirty"}, "waist": {"29"}, "hips": {"37"}}

	recorder := performForm("/api/v1/recommendations/form", form, newRouterUnderTest(t, svc, config.RetryConfig{}))
	require.Equal(t, http.StatusBadRequest, recorder.Code)
	require.Equal(t, 0, svc.recommendCalls)

	errBody := decodeErrorBody(t, recorder.Body.Bytes())
	require.Equal(t, styling.CodeInvalidMeasurement, errBody["error"]["code"])
	require.Contains(t, errBody["error"]["message"], "bust")
}

func TestRouter_History(t *testing.T) {
	svc := &stubAdvisor{
		historyFn: func(ctx context.Context, limit int) ([]styling.OutfitRecord, error) {
			require.Equal(t, 2, limit)
			return []styling.OutfitRecord{
				styling.NewOutfitRecord([]styling.Field{{Name: "Size", Value: "Large"}, {Name: "Shape", Value: "Pear"}}),
			}, nil
		},
	}

	recorder := performJSON(http.MethodGet, "/api/v1/outfits?limit=2", "", newRouterUnderTest(t, svc, config.RetryConfig{}))
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Outfits []map[string]string `json:"outfits"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Equal(t, []map[string]string{{"Size": "Large", "Shape": "Pear"}}, body.Outfits)

	recorder = performJSON(http.MethodGet, "/api/v1/outfits?limit=abc", "", newRouterUnderTest(t, svc, config.RetryConfig{}))
	require.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestRouter_RetriesOnlyReads(t *testing.T) {
	retry := config.RetryConfig{Enabled: true, MaxAttempts: 3, BaseBackoff: time.Millisecond}
	svc := &stubAdvisor{
		historyFn: func(ctx context.Context, limit int) ([]styling.OutfitRecord, error) {
			return nil, apperrors.Wrap(styling.CodePersistence, "failed to list outfits", errors.New("db down"))
		},
		recommendFn: func(ctx context.Context, req styling.Request) (styling.Response, error) {
			return styling.Response{}, apperrors.Wrap(styling.CodePersistence, "failed to save outfit", errors.New("db down"))
		},
	}
	server := newRouterUnderTest(t, svc, retry)

	recorder := performJSON(http.MethodGet, "/api/v1/outfits", "", server)
	require.Equal(t, http.StatusInternalServerError, recorder.Code)
	require.Equal(t, 3, svc.historyCalls)

	recorder = performJSON(http.MethodPost, "/api/v1/recommendations", `{"bust":37,"waist":29,"hips":37,"save":true}`, server)
	require.Equal(t, http.StatusInternalServerError, recorder.Code)
	require.Equal(t, 1, svc.recommendCalls)
}

func TestRouter_HealthAndCORS(t *testing.T) {
	server := newRouterUnderTest(t, &stubAdvisor{}, config.RetryConfig{})

	recorder := performJSON(http.MethodGet, "/healthz", "", server)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.JSONEq(t, `{"status":"ok"}`, recorder.Body.String())

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/recommendations", nil)
	req.Header.Set("Origin", "https://stylist.example")
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "https://stylist.example", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_RateLimit(t *testing.T) {
	cfg := testConfig(config.RetryConfig{})
	cfg.HTTP.RateLimit = config.RateLimitConfig{Enabled: true, RequestsPerMinute: 1, Burst: 1}
	server := NewRouter(cfg, NewHandler(&stubAdvisor{}, newTestLogger()))

	require.Equal(t, http.StatusOK, performJSON(http.MethodGet, "/healthz", "", server).Code)
	recorder := performJSON(http.MethodGet, "/healthz", "", server)
	require.Equal(t, http.StatusTooManyRequests, recorder.Code)
	require.Equal(t, "rate_limit_exceeded", decodeErrorBody(t, recorder.Body.Bytes())["error"]["code"])
}

func performJSON(method, path, body string, server *http.Server) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)
	return rec
}

func performForm(path string, form url.Values, server *http.Server) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)
	return rec
}

func newRouterUnderTest(t *testing.T, svc styling.Service, retry config.RetryConfig) *http.Server {
	t.Helper()
	return NewRouter(testConfig(retry), NewHandler(svc, newTestLogger()))
}

func testConfig(retry config.RetryConfig) *config.Config {
	return &config.Config{
		HTTP: config.HTTPConfig{
			Address:        ":0",
			ReadTimeout:    time.Second,
			WriteTimeout:   time.Second,
			AllowedOrigins: []string{"https://stylist.example"},
			Retry:          retry,
		},
	}
}

func newTestLogger() *slog.Logger {
	handler := slog.NewTextHandler(io.Discard, nil)
	return slog.New(handler)
}

type stubAdvisor struct {
	recommendFn    func(ctx context.Context, req styling.Request) (styling.Response, error)
	historyFn      func(ctx context.Context, limit int) ([]styling.OutfitRecord, error)
	recommendCalls int
	historyCalls   int
}

func (s *stubAdvisor) Recommend(ctx context.Context, req styling.Request) (styling.Response, error) {
	s.recommendCalls++
	if s.recommendFn != nil {
		return s.recommendFn(ctx, req)
	}
	return styling.Response{}, nil
}

func (s *stubAdvisor) History(ctx context.Context, limit int) ([]styling.OutfitRecord, error) {
	s.historyCalls++
	if s.historyFn != nil {
		return s.historyFn(ctx, limit)
	}
	return nil, nil
}

func decodeErrorBody(t *testing.T, raw []byte) map[string]map[string]string {
	t.Helper()
	var body map[string]map[string]string
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}
