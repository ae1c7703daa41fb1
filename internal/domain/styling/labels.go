package styling

import (
	"fmt"
	"strings"

	apperrors "github.com/yanqian/styling-advisor/pkg/errors"
)

// ParseUndertone validates an undertone label. Empty input means Unset.
func ParseUndertone(label string) (Undertone, error) {
	clean := strings.TrimSpace(label)
	if clean == "" {
		return UndertoneUnset, nil
	}
	for _, u := range []Undertone{UndertoneWarm, UndertoneCool, UndertoneNeutral} {
		if strings.EqualFold(clean, string(u)) {
			return u, nil
		}
	}
	return UndertoneUnset, apperrors.Wrap(CodeInvalidInput, fmt.Sprintf("undertone %q must be one of Warm, Cool, Neutral", label), nil)
}

// ParseSizeCategory validates a size label.
func ParseSizeCategory(label string) (SizeCategory, error) {
	clean := strings.TrimSpace(label)
	for _, s := range []SizeCategory{SizeSmall, SizeMedium, SizeLarge} {
		if strings.EqualFold(clean, string(s)) {
			return s, nil
		}
	}
	return "", apperrors.Wrap(CodeInvalidCategory, fmt.Sprintf("unknown size category %q", label), nil)
}

// ParseBodyShape validates a shape label. Both "Inverted Triangle" and "InvertedTriangle" are accepted.
func ParseBodyShape(label string) (BodyShape, error) {
	clean := strings.Join(strings.Fields(label), "")
	for _, s := range []BodyShape{ShapeHourglass, ShapePear, ShapeRectangle, ShapeInvertedTriangle, ShapeUndefined} {
		if strings.EqualFold(clean, strings.ReplaceAll(string(s), " ", "")) {
			return s, nil
		}
	}
	return "", apperrors.Wrap(CodeInvalidCategory, fmt.Sprintf("unknown body shape %q", label), nil)
}
