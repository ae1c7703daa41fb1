package styling

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/yanqian/styling-advisor/internal/infra/llm/chatgpt"
	apperrors "github.com/yanqian/styling-advisor/pkg/errors"
	"github.com/yanqian/styling-advisor/pkg/metrics"
)

const defaultHistoryLimit = 20

// Service exposes the styling recommendation pipeline.
type Service interface {
	Recommend(ctx context.Context, req Request) (Response, error)
	History(ctx context.Context, limit int) ([]OutfitRecord, error)
}

type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req chatgpt.ChatCompletionRequest) (chatgpt.ChatCompletionResponse, error)
}

// WeatherClient returns current conditions for a city.
type WeatherClient interface {
	Current(ctx context.Context, city string) (Weather, error)
}

// WeatherCache stores recent weather lookups keyed by city.
type WeatherCache interface {
	Get(ctx context.Context, city string) (Weather, bool, error)
	Put(ctx context.Context, city string, weather Weather, ttl time.Duration) error
}

// OutfitStore is the append-only persistence collaborator.
type OutfitStore interface {
	Append(ctx context.Context, record OutfitRecord) error
	List(ctx context.Context, limit int) ([]OutfitRecord, error)
}

type service struct {
	cfg     Config
	weather WeatherClient
	cache   WeatherCache
	client  ChatClient
	store   OutfitStore
	logger  *slog.Logger
}

// NewService wires up the styling domain. client may be nil when no advisory model is configured.
func NewService(cfg Config, weather WeatherClient, cache WeatherCache, client ChatClient, store OutfitStore, logger *slog.Logger) Service {
	return &service{
		cfg:     cfg,
		weather: weather,
		cache:   cache,
		client:  client,
		store:   store,
		logger:  logger.With("component", "styling.service"),
	}
}

func (s *service) Recommend(ctx context.Context, req Request) (Response, error) {
	m, err := Normalize(RawMeasurements{
		Bust:    req.Bust,
		Waist:   req.Waist,
		Hips:    req.Hips,
		HighHip: req.HighHip,
		Unit:    req.Unit,
	})
	if err != nil {
		return Response{}, err
	}
	undertone, err := ParseUndertone(req.Undertone)
	if err != nil {
		return Response{}, err
	}
	profile := Classify(m, undertone)
	s.logger.Info("styling profile classified", "size", profile.Size(), "shape", profile.Shape(), "undertone", profile.Undertone())

	var unavailable []string
	weather, err := s.lookupWeather(ctx, req.City)
	if err != nil {
		s.logger.Warn("weather unavailable", "city", req.City, "error", err)
		unavailable = append(unavailable, "weather")
	}

	// No city means no lookup was asked for, so the section stays empty.
	weatherTips := Bundle{}
	switch {
	case weather.Available:
		weatherTips = WeatherTips(weather.TempC, weather.Condition)
	case err != nil:
		weatherTips = UnavailableBundle("Weather")
	}
	sections := []Section{
		{Title: "Color by size", Field: FieldSizeColors, Tips: ColorsBySize(profile.Size())},
		{Title: "Skin tone palette", Field: FieldSkinToneColors, Tips: PaletteByUndertone(profile.Undertone())},
		{Title: "Print tips", Field: FieldPrintTips, Tips: PrintTips(profile.Shape())},
		{Title: "Weather tips", Field: FieldWeatherTips, Tips: weatherTips},
		{Title: "Occasion tips", Field: FieldOccasionTips, Tips: OccasionTips(req.Occasion)},
	}

	res := Response{
		Profile: profile.View(),
		Measurements: MeasurementsView{
			Bust:    m.Bust,
			Waist:   m.Waist,
			Hips:    m.Hips,
			HighHip: m.HighHip,
		},
	}
	if weather.Available {
		w := weather
		res.Weather = &w
	}

	adviceSection := Section{Title: "Stylist advice", Field: FieldAdvice, Tips: Bundle{}}
	if req.IncludeAdvice {
		advice, usage, adviceErr := s.advise(ctx, profile, req.Occasion, weather)
		if adviceErr != nil {
			s.logger.Warn("advisory text unavailable", "error", adviceErr)
			unavailable = append(unavailable, "advice")
			adviceSection.Tips = UnavailableBundle("Advice")
		} else {
			res.Advice = advice
			res.TokenUsage = usage
			adviceSection.Tips = Bundle{{Label: "Advice", Text: advice}}
		}
	}

	// The advice field is always present so every record shares one layout.
	record := BuildRecord(profile, RecordContext{
		Occasion: req.Occasion,
		City:     req.City,
		Weather:  weather,
	}, append(sections, adviceSection)...)

	if req.IncludeAdvice {
		sections = append(sections, adviceSection)
	}
	res.Sections = sections
	res.Unavailable = unavailable
	res.Record = record.Map()

	if req.Save {
		if err := s.store.Append(ctx, record); err != nil {
			if errors.Is(err, ErrSchemaMismatch) {
				return Response{}, apperrors.Wrap(CodeSchemaMismatch, "outfit record does not match the stored layout", err)
			}
			return Response{}, apperrors.Wrap(CodePersistence, "failed to save outfit", err)
		}
		res.Saved = true
		s.logger.Info("outfit saved", "fields", record.Len())
	}
	return res, nil
}

func (s *service) History(ctx context.Context, limit int) ([]OutfitRecord, error) {
	if limit <= 0 {
		limit = s.cfg.HistoryLimit
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	records, err := s.store.List(ctx, limit)
	if err != nil {
		return nil, apperrors.Wrap(CodePersistence, "failed to list outfits", err)
	}
	return records, nil
}

func (s *service) lookupWeather(ctx context.Context, city string) (Weather, error) {
	name := strings.TrimSpace(city)
	if name == "" {
		return Weather{}, nil
	}
	if s.weather == nil {
		return Weather{}, apperrors.Wrap(CodeUnavailable, "weather client not configured", nil)
	}
	key := strings.ToLower(name)
	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, key)
		if err != nil {
			s.logger.Warn("weather cache read failed", "city", name, "error", err)
		} else if ok {
			s.logger.Debug("weather cache hit", "city", name)
			return cached, nil
		}
	}
	weather, err := s.weather.Current(ctx, name)
	if err != nil {
		return Weather{}, apperrors.Wrap(CodeUnavailable, "weather lookup failed", err)
	}
	weather.Available = true
	if s.cache != nil {
		if err := s.cache.Put(ctx, key, weather, s.cfg.WeatherTTL); err != nil {
			s.logger.Warn("weather cache write failed", "city", name, "error", err)
		}
	}
	return weather, nil
}

func (s *service) advise(ctx context.Context, profile Profile, occasion string, weather Weather) (string, *metrics.TokenUsage, error) {
	if s.client == nil || !s.cfg.AdviceEnabled {
		return "", nil, apperrors.Wrap(CodeUnavailable, "advisory model not configured", nil)
	}
	completion, err := s.client.CreateChatCompletion(ctx, chatgpt.ChatCompletionRequest{
		Model: s.cfg.Model,
		Messages: []chatgpt.Message{
			{Role: "system", Content: s.buildSystemPrompt()},
			{Role: "user", Content: buildAdvicePrompt(profile, occasion, weather)},
		},
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return "", nil, apperrors.Wrap(CodeUnavailable, "chatgpt request failed", err)
	}
	if len(completion.Choices) == 0 {
		return "", nil, apperrors.Wrap(CodeUnavailable, "chatgpt returned no choices", nil)
	}
	content := strings.TrimSpace(completion.Choices[0].Message.Content)
	if content == "" {
		return "", nil, apperrors.Wrap(CodeUnavailable, "chatgpt returned empty advice", nil)
	}
	var usage *metrics.TokenUsage
	if u := completion.Usage.TokenUsage(); !u.IsZero() {
		usage = &u
	}
	return content, usage, nil
}

func (s *service) buildSystemPrompt() string {
	base := strings.TrimSpace(s.cfg.Prompt)
	if base == "" {
		base = "You are a personal stylist."
	}
	return base + " Answer in plain text with at most five short sentences."
}

func buildAdvicePrompt(profile Profile, occasion string, weather Weather) string {
	occ := strings.TrimSpace(occasion)
	if occ == "" {
		occ = "everyday wear"
	}
	conditions := "The weather is unknown."
	if weather.Available {
		conditions = fmt.Sprintf("The weather is %s at %.1f°C.", weather.Condition, weather.TempC)
	}
	return fmt.Sprintf("Suggest an outfit for someone with a %s body shape and %s body size, dressing for %s. %s",
		profile.Shape(), profile.Size(), occ, conditions)
}
