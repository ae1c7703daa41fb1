package resilience

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/require"

	"github.com/yanqian/styling-advisor/internal/domain/styling"
	"github.com/yanqian/styling-advisor/internal/infra/llm/chatgpt"
)

func TestWeatherClientTripsAfterConsecutiveFailures(t *testing.T) {
	inner := &stubWeather{err: errors.New("boom")}
	client := NewWeatherClient(inner, Settings{FailureThreshold: 2, Timeout: time.Minute}, newTestLogger())

	for i := 0; i < 2; i++ {
		_, err := client.Current(context.Background(), "Oslo")
		require.EqualError(t, err, "boom")
	}

	_, err := client.Current(context.Background(), "Oslo")
	require.ErrorIs(t, err, gobreaker.ErrOpenState)
	require.Equal(t, 2, inner.calls)
}

func TestWeatherClientPassesThroughSuccess(t *testing.T) {
	inner := &stubWeather{weather: styling.Weather{TempC: 12, Condition: "Clouds", Available: true}}
	client := NewWeatherClient(inner, Settings{}, newTestLogger())

	got, err := client.Current(context.Background(), "Lima")
	require.NoError(t, err)
	require.Equal(t, inner.weather, got)
}

func TestChatClientIgnoresCanceledContext(t *testing.T) {
	inner := &stubChat{err: context.Canceled}
	client := NewChatClient(inner, Settings{FailureThreshold: 1}, newTestLogger())

	for i := 0; i < 3; i++ {
		_, err := client.CreateChatCompletion(context.Background(), chatgpt.ChatCompletionRequest{})
		require.ErrorIs(t, err, context.Canceled)
	}
	require.Equal(t, 3, inner.calls)
}

type stubWeather struct {
	weather styling.Weather
	err     error
	calls   int
}

func (s *stubWeather) Current(ctx context.Context, city string) (styling.Weather, error) {
	s.calls++
	if s.err != nil {
		return styling.Weather{}, s.err
	}
	return s.weather, nil
}

type stubChat struct {
	err   error
	calls int
}

func (s *stubChat) CreateChatCompletion(ctx context.Context, req chatgpt.ChatCompletionRequest) (chatgpt.ChatCompletionResponse, error) {
	s.calls++
	return chatgpt.ChatCompletionResponse{}, s.err
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
