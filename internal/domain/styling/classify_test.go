package styling

import (
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/yanqian/styling-advisor/pkg/errors"
)

func hh(v float64) *float64 { return &v }

func TestClassifyShape(t *testing.T) {
	cases := []struct {
		name string
		m    Measurements
		want BodyShape
	}{
		{"hourglass", Measurements{Bust: 36, Waist: 25, Hips: 36}, ShapeHourglass},
		{"rectangle", Measurements{Bust: 37, Waist: 29, Hips: 37}, ShapeRectangle},
		{"pear with high hip", Measurements{Bust: 34, Waist: 33, Hips: 38, HighHip: hh(36)}, ShapePear},
		{"pear needs high hip", Measurements{Bust: 34, Waist: 33, Hips: 38}, ShapeUndefined},
		{"inverted triangle", Measurements{Bust: 40, Waist: 33, Hips: 35}, ShapeInvertedTriangle},
		// h-b=3 misses Pear, h-w=11 misses Rectangle, b-h=-3 misses Inverted Triangle.
		{"wide hips below pear threshold", Measurements{Bust: 37, Waist: 29, Hips: 40, HighHip: hh(38)}, ShapeUndefined},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, ClassifyShape(tc.m))
			require.Equal(t, tc.want, ClassifyShape(tc.m))
		})
	}
}

func TestClassifySize(t *testing.T) {
	cases := []struct {
		name string
		m    Measurements
		want SizeCategory
	}{
		{"small band", Measurements{Bust: 34, Waist: 25.5, Hips: 36.5}, SizeSmall},
		{"medium band", Measurements{Bust: 37, Waist: 27.5, Hips: 38.5}, SizeMedium},
		{"large band", Measurements{Bust: 39, Waist: 30, Hips: 41}, SizeLarge},
		{"average small", Measurements{Bust: 37, Waist: 29, Hips: 37}, SizeSmall},
		{"average medium", Measurements{Bust: 40, Waist: 34, Hips: 42}, SizeMedium},
		{"average large", Measurements{Bust: 44, Waist: 40, Hips: 46}, SizeLarge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, ClassifySize(tc.m))
		})
	}
}

func TestClassifyCarriesUndertone(t *testing.T) {
	p := Classify(Measurements{Bust: 37, Waist: 29, Hips: 37}, UndertoneCool)
	require.Equal(t, ProfileView{Size: SizeSmall, Shape: ShapeRectangle, Undertone: UndertoneCool}, p.View())
}

func TestParseLabels(t *testing.T) {
	shape, err := ParseBodyShape(" inverted   triangle ")
	require.NoError(t, err)
	require.Equal(t, ShapeInvertedTriangle, shape)

	size, err := ParseSizeCategory("LARGE")
	require.NoError(t, err)
	require.Equal(t, SizeLarge, size)

	_, err = ParseSizeCategory("XL")
	require.True(t, apperrors.IsCode(err, CodeInvalidCategory))
	_, err = ParseBodyShape("apple")
	require.True(t, apperrors.IsCode(err, CodeInvalidCategory))

	tone, err := ParseUndertone("")
	require.NoError(t, err)
	require.Equal(t, UndertoneUnset, tone)
	tone, err = ParseUndertone("warm")
	require.NoError(t, err)
	require.Equal(t, UndertoneWarm, tone)
	_, err = ParseUndertone("olive")
	require.True(t, apperrors.IsCode(err, CodeInvalidInput))
}
