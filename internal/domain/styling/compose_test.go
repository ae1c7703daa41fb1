package styling

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrintTipsAlwaysEndWithUniversal(t *testing.T) {
	for _, shape := range []BodyShape{ShapeHourglass, ShapePear, ShapeRectangle, ShapeInvertedTriangle} {
		tips := PrintTips(shape)
		require.Len(t, tips, 2, shape)
		require.Equal(t, "Universal", tips[1].Label)
	}
	tips := PrintTips(ShapeUndefined)
	require.Len(t, tips, 1)
	require.Equal(t, "Universal", tips[0].Label)
}

func TestWeatherTips(t *testing.T) {
	tips := WeatherTips(2, "cold and rainy")
	require.Equal(t, []string{"Cold Weather", "Rain Gear"}, labels(tips))

	tips = WeatherTips(30, "Sunny, windy")
	require.Equal(t, []string{"Hot Weather", "Wind Protection", "Sun Care"}, labels(tips))

	require.Equal(t, []string{"Warm Weather"}, labels(WeatherTips(15, "Clouds")))
	require.Equal(t, []string{"Cool Weather", "Snow Protection"}, labels(WeatherTips(5, "SNOW")))
}

func TestOccasionTips(t *testing.T) {
	cases := map[string][]string{
		"business casual":           {"Business Casual"},
		"Casual Friday":             {"Casual"},
		"dressy casual dinner":      {"Dressy Casual"},
		"Black-Tie Gala":            {"Formal"},
		"cocktail party":            {"Semi-Formal"},
		"business formal interview": {"Business Formal"},
		"gala then casual drinks":   {"Formal", "Casual"},
		"hiking":                    {"General"},
		"":                          {"General"},
	}
	for occasion, want := range cases {
		require.Equal(t, want, labels(OccasionTips(occasion)), occasion)
	}
}

func TestLookupsDegradeToEmpty(t *testing.T) {
	require.Empty(t, ColorsBySize("XL"))
	require.Empty(t, PaletteByUndertone(UndertoneUnset))
	require.True(t, ColorsBySize(SizeLarge).Has("Large Body Size"))
	require.True(t, PaletteByUndertone(UndertoneNeutral).Has("Neutral Undertones"))
}

func labels(b Bundle) []string {
	out := make([]string, 0, len(b))
	for _, tip := range b {
		out = append(out, tip.Label)
	}
	return out
}
