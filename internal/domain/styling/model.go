package styling

import (
	"time"

	"github.com/yanqian/styling-advisor/pkg/metrics"
)

// Unit identifies the measurement system of raw input.
type Unit string

const (
	UnitInches      Unit = "inches"
	UnitCentimeters Unit = "centimeters"
)

// SizeCategory is the coarse body size bucket.
type SizeCategory string

const (
	SizeSmall  SizeCategory = "Small"
	SizeMedium SizeCategory = "Medium"
	SizeLarge  SizeCategory = "Large"
)

// BodyShape is the silhouette derived from bust/waist/hip differentials.
type BodyShape string

const (
	ShapeHourglass        BodyShape = "Hourglass"
	ShapePear             BodyShape = "Pear"
	ShapeRectangle        BodyShape = "Rectangle"
	ShapeInvertedTriangle BodyShape = "Inverted Triangle"
	ShapeUndefined        BodyShape = "Undefined"
)

// Undertone is the skin undertone driving palette suggestions.
type Undertone string

const (
	UndertoneUnset   Undertone = ""
	UndertoneWarm    Undertone = "Warm"
	UndertoneCool    Undertone = "Cool"
	UndertoneNeutral Undertone = "Neutral"
)

// RawMeasurements is caller input before unit conversion. A zero HighHip means not provided.
type RawMeasurements struct {
	Bust    float64
	Waist   float64
	Hips    float64
	HighHip float64
	Unit    Unit
}

// Measurements are canonical values in inches. Only Normalize produces them.
type Measurements struct {
	Bust    float64
	Waist   float64
	Hips    float64
	HighHip *float64
}

// Profile is the classifier output. It is never mutated after Classify returns it.
type Profile struct {
	size      SizeCategory
	shape     BodyShape
	undertone Undertone
}

func (p Profile) Size() SizeCategory { return p.size }

func (p Profile) Shape() BodyShape { return p.shape }

func (p Profile) Undertone() Undertone { return p.undertone }

// View returns the serializable form of the profile.
func (p Profile) View() ProfileView {
	return ProfileView{Size: p.size, Shape: p.shape, Undertone: p.undertone}
}

// Tip is a single labelled piece of advice.
type Tip struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

// Bundle is an ordered set of tips; insertion order is display order.
type Bundle []Tip

// Texts returns the advice strings in insertion order.
func (b Bundle) Texts() []string {
	out := make([]string, 0, len(b))
	for _, tip := range b {
		out = append(out, tip.Text)
	}
	return out
}

// Has reports whether a tip with the given label exists.
func (b Bundle) Has(label string) bool {
	for _, tip := range b {
		if tip.Label == label {
			return true
		}
	}
	return false
}

// Weather is the context supplied by the weather collaborator.
type Weather struct {
	TempC     float64 `json:"tempC"`
	Condition string  `json:"condition"`
	Available bool    `json:"available"`
}

// Request captures the payload accepted by the advisor service.
type Request struct {
	Bust          float64 `json:"bust"`
	Waist         float64 `json:"waist"`
	Hips          float64 `json:"hips"`
	HighHip       float64 `json:"highHip,omitempty"`
	Unit          Unit    `json:"unit,omitempty"`
	Undertone     string  `json:"undertone,omitempty"`
	Occasion      string  `json:"occasion,omitempty"`
	City          string  `json:"city,omitempty"`
	IncludeAdvice bool    `json:"includeAdvice,omitempty"`
	Save          bool    `json:"save,omitempty"`
}

// Section groups one composer bundle under a display title and a record field.
type Section struct {
	Title string `json:"title"`
	Field string `json:"field"`
	Tips  Bundle `json:"tips"`
}

// ProfileView is the serializable form of a Profile.
type ProfileView struct {
	Size      SizeCategory `json:"size"`
	Shape     BodyShape    `json:"shape"`
	Undertone Undertone    `json:"undertone,omitempty"`
}

// MeasurementsView echoes the normalized measurements in inches.
type MeasurementsView struct {
	Bust    float64  `json:"bust"`
	Waist   float64  `json:"waist"`
	Hips    float64  `json:"hips"`
	HighHip *float64 `json:"highHip,omitempty"`
}

// Response is serialized back to API and CLI consumers.
type Response struct {
	Profile      ProfileView         `json:"profile"`
	Measurements MeasurementsView    `json:"measurements"`
	Weather      *Weather            `json:"weather,omitempty"`
	Sections     []Section           `json:"sections"`
	Advice       string              `json:"advice,omitempty"`
	Unavailable  []string            `json:"unavailable,omitempty"`
	Record       map[string]string   `json:"record"`
	Saved        bool                `json:"saved"`
	TokenUsage   *metrics.TokenUsage `json:"tokenUsage,omitempty"`
}

// Config wires runtime dependencies for the advisor domain.
type Config struct {
	Model         string
	Temperature   float32
	Prompt        string
	AdviceEnabled bool
	WeatherTTL    time.Duration
	HistoryLimit  int
}
