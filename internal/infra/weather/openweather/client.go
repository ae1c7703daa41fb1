package openweather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/yanqian/styling-advisor/internal/domain/styling"
)

const defaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"

// Client fetches current conditions from OpenWeatherMap.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient builds an API client. The key is injected from configuration.
func NewClient(baseURL, apiKey string, timeout time.Duration) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("openweather api key cannot be empty")
	}
	endpoint := strings.TrimSpace(baseURL)
	if endpoint == "" {
		endpoint = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(endpoint, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// Current retrieves the metric temperature and main condition for a city.
func (c *Client) Current(ctx context.Context, city string) (styling.Weather, error) {
	name := strings.TrimSpace(city)
	if name == "" {
		return styling.Weather{}, errors.New("city cannot be empty")
	}
	query := url.Values{}
	query.Set("q", name)
	query.Set("units", "metric")
	query.Set("appid", c.apiKey)
	endpoint := c.baseURL + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return styling.Weather{}, fmt.Errorf("build weather request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return styling.Weather{}, fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return styling.Weather{}, fmt.Errorf("weather request error: status=%d body=%s", resp.StatusCode, string(payload))
	}

	var raw apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return styling.Weather{}, fmt.Errorf("decode weather response: %w", err)
	}
	return normalize(raw)
}

type apiResponse struct {
	Name    string       `json:"name"`
	Main    mainBlock    `json:"main"`
	Weather []conditions `json:"weather"`
}

type mainBlock struct {
	Temp *float64 `json:"temp"`
}

type conditions struct {
	Main        string `json:"main"`
	Description string `json:"description"`
}

func normalize(raw apiResponse) (styling.Weather, error) {
	if raw.Main.Temp == nil {
		return styling.Weather{}, errors.New("weather response missing temperature")
	}
	if len(raw.Weather) == 0 {
		return styling.Weather{}, errors.New("weather response missing conditions")
	}
	condition := strings.TrimSpace(raw.Weather[0].Main)
	if condition == "" {
		condition = strings.TrimSpace(raw.Weather[0].Description)
	}
	return styling.Weather{
		TempC:     *raw.Main.Temp,
		Condition: condition,
		Available: true,
	}, nil
}
