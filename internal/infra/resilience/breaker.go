package resilience

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/yanqian/styling-advisor/internal/domain/styling"
	"github.com/yanqian/styling-advisor/internal/infra/llm/chatgpt"
)

// Settings configures the circuit breakers guarding remote collaborators.
type Settings struct {
	// MaxRequests is the number of probes allowed while half-open.
	MaxRequests uint32
	// Interval is the cyclic period of the closed state for clearing counts.
	Interval time.Duration
	// Timeout is how long the breaker stays open.
	Timeout time.Duration
	// FailureThreshold trips the breaker after this many consecutive failures.
	FailureThreshold uint32
}

// DefaultSettings returns the settings used when configuration leaves them unset.
func DefaultSettings() Settings {
	return Settings{
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          30 * time.Second,
		FailureThreshold: 3,
	}
}

func newBreaker[T any](name string, s Settings, logger *slog.Logger) *gobreaker.CircuitBreaker[T] {
	def := DefaultSettings()
	if s.MaxRequests == 0 {
		s.MaxRequests = def.MaxRequests
	}
	if s.FailureThreshold == 0 {
		s.FailureThreshold = def.FailureThreshold
	}
	if s.Timeout <= 0 {
		s.Timeout = def.Timeout
	}
	return gobreaker.NewCircuitBreaker[T](gobreaker.Settings{
		Name:        name,
		MaxRequests: s.MaxRequests,
		Interval:    s.Interval,
		Timeout:     s.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= s.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info("circuit breaker state changed",
				"breaker", name,
				"from", from.String(),
				"to", to.String(),
			)
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	})
}

// WeatherClient guards a weather collaborator with a circuit breaker.
type WeatherClient struct {
	inner   styling.WeatherClient
	breaker *gobreaker.CircuitBreaker[styling.Weather]
}

// NewWeatherClient wraps inner.
func NewWeatherClient(inner styling.WeatherClient, s Settings, logger *slog.Logger) *WeatherClient {
	return &WeatherClient{
		inner:   inner,
		breaker: newBreaker[styling.Weather]("weather", s, logger.With("component", "resilience.weather")),
	}
}

// Current implements styling.WeatherClient.
func (c *WeatherClient) Current(ctx context.Context, city string) (styling.Weather, error) {
	return c.breaker.Execute(func() (styling.Weather, error) {
		return c.inner.Current(ctx, city)
	})
}

// ChatClient guards the advisory model with a circuit breaker.
type ChatClient struct {
	inner   styling.ChatClient
	breaker *gobreaker.CircuitBreaker[chatgpt.ChatCompletionResponse]
}

// NewChatClient wraps inner.
func NewChatClient(inner styling.ChatClient, s Settings, logger *slog.Logger) *ChatClient {
	return &ChatClient{
		inner:   inner,
		breaker: newBreaker[chatgpt.ChatCompletionResponse]("advisor", s, logger.With("component", "resilience.advisor")),
	}
}

// CreateChatCompletion implements styling.ChatClient.
func (c *ChatClient) CreateChatCompletion(ctx context.Context, req chatgpt.ChatCompletionRequest) (chatgpt.ChatCompletionResponse, error) {
	return c.breaker.Execute(func() (chatgpt.ChatCompletionResponse, error) {
		return c.inner.CreateChatCompletion(ctx, req)
	})
}

var (
	_ styling.WeatherClient = (*WeatherClient)(nil)
	_ styling.ChatClient    = (*ChatClient)(nil)
)
