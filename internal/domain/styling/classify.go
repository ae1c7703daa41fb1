package styling

import "math"

type sizeBand struct {
	size               SizeCategory
	bustMin, bustMax   float64
	waistMin, waistMax float64
	hipsMin, hipsMax   float64
}

// Sample size bands are checked before the average fallback.
var sizeBands = []sizeBand{
	{size: SizeSmall, bustMin: 33.5, bustMax: 34.5, waistMin: 25, waistMax: 26, hipsMin: 36, hipsMax: 37},
	{size: SizeMedium, bustMin: 35.5, bustMax: 37.5, waistMin: 27, waistMax: 28, hipsMin: 38, hipsMax: 39},
	{size: SizeLarge, bustMin: 38, bustMax: 39.5, waistMin: 29.5, waistMax: 31, hipsMin: 40.5, hipsMax: 42},
}

func (b sizeBand) contains(m Measurements) bool {
	return within(m.Bust, b.bustMin, b.bustMax) &&
		within(m.Waist, b.waistMin, b.waistMax) &&
		within(m.Hips, b.hipsMin, b.hipsMax)
}

func within(v, lo, hi float64) bool {
	return v >= lo && v <= hi
}

// ClassifySize matches the sample size bands, falling back to the average of the three measurements.
func ClassifySize(m Measurements) SizeCategory {
	for _, band := range sizeBands {
		if band.contains(m) {
			return band.size
		}
	}
	avg := (m.Bust + m.Waist + m.Hips) / 3
	switch {
	case avg < 36:
		return SizeSmall
	case avg < 40:
		return SizeMedium
	default:
		return SizeLarge
	}
}

// ClassifyShape evaluates the shape rules in order; the first match wins.
func ClassifyShape(m Measurements) BodyShape {
	b, w, h := m.Bust, m.Waist, m.Hips
	switch {
	case math.Abs(b-h) <= 1 && (b-w >= 9 || h-w >= 10):
		return ShapeHourglass
	case m.HighHip != nil && h-b >= 3.6 && h-w < 9:
		return ShapePear
	case math.Abs(b-h) < 3.6 && b-w < 9 && h-w < 10:
		return ShapeRectangle
	case b-h >= 3.6 && b-w < 9:
		return ShapeInvertedTriangle
	default:
		return ShapeUndefined
	}
}

// Classify derives the immutable profile for normalized measurements.
func Classify(m Measurements, undertone Undertone) Profile {
	return Profile{
		size:      ClassifySize(m),
		shape:     ClassifyShape(m),
		undertone: undertone,
	}
}
