package styling

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	apperrors "github.com/yanqian/styling-advisor/pkg/errors"
)

const cmPerInch = 2.54

// Normalize converts raw input to canonical inches. Bust, waist and hips are required.
func Normalize(raw RawMeasurements) (Measurements, error) {
	unit, err := ParseUnit(string(raw.Unit))
	if err != nil {
		return Measurements{}, err
	}
	for _, field := range []struct {
		name  string
		value float64
	}{
		{"bust", raw.Bust},
		{"waist", raw.Waist},
		{"hips", raw.Hips},
	} {
		if err := validateRequired(field.name, field.value); err != nil {
			return Measurements{}, err
		}
	}
	if math.IsNaN(raw.HighHip) || math.IsInf(raw.HighHip, 0) || raw.HighHip < 0 {
		return Measurements{}, invalidMeasurement("high_hip", "must be a non-negative number")
	}

	scale := 1.0
	if unit == UnitCentimeters {
		scale = cmPerInch
	}
	m := Measurements{
		Bust:  raw.Bust / scale,
		Waist: raw.Waist / scale,
		Hips:  raw.Hips / scale,
	}
	if raw.HighHip > 0 {
		hh := raw.HighHip / scale
		m.HighHip = &hh
	}
	return m, nil
}

// ParseUnit accepts the canonical unit names and their common abbreviations. Empty means inches.
func ParseUnit(value string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "in", "inch", "inches":
		return UnitInches, nil
	case "cm", "centimeter", "centimeters", "centimetre", "centimetres":
		return UnitCentimeters, nil
	default:
		return "", invalidMeasurement("unit", fmt.Sprintf("unsupported unit %q", value))
	}
}

// ParseRawMeasurements reads free-text form or prompt input. An empty high hip means not provided.
func ParseRawMeasurements(bust, waist, hips, highHip, unit string) (RawMeasurements, error) {
	parsedUnit, err := ParseUnit(unit)
	if err != nil {
		return RawMeasurements{}, err
	}
	raw := RawMeasurements{Unit: parsedUnit}
	if raw.Bust, err = parseField("bust", bust, true); err != nil {
		return RawMeasurements{}, err
	}
	if raw.Waist, err = parseField("waist", waist, true); err != nil {
		return RawMeasurements{}, err
	}
	if raw.Hips, err = parseField("hips", hips, true); err != nil {
		return RawMeasurements{}, err
	}
	if raw.HighHip, err = parseField("high_hip", highHip, false); err != nil {
		return RawMeasurements{}, err
	}
	return raw, nil
}

func parseField(name, value string, required bool) (float64, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		if required {
			return 0, invalidMeasurement(name, "is required")
		}
		return 0, nil
	}
	parsed, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, apperrors.Wrap(CodeInvalidMeasurement, name+" must be numeric", err)
	}
	return parsed, nil
}

func validateRequired(name string, value float64) error {
	switch {
	case math.IsNaN(value) || math.IsInf(value, 0):
		return invalidMeasurement(name, "must be numeric")
	case value < 0:
		return invalidMeasurement(name, "cannot be negative")
	case value == 0:
		return invalidMeasurement(name, "is required")
	}
	return nil
}

func invalidMeasurement(field, reason string) error {
	return apperrors.Wrap(CodeInvalidMeasurement, field+" "+reason, nil)
}
