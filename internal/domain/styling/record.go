package styling

import (
	"strconv"
	"strings"
)

// Record field names, in the order BuildRecord emits them.
const (
	FieldSize           = "Size"
	FieldShape          = "Shape"
	FieldUndertone      = "Undertone"
	FieldOccasion       = "Occasion"
	FieldCity           = "City"
	FieldTemp           = "Temp"
	FieldWeather        = "Weather"
	FieldSizeColors     = "SizeColors"
	FieldSkinToneColors = "SkinToneColors"
	FieldPrintTips      = "PrintTips"
	FieldWeatherTips    = "WeatherTips"
	FieldOccasionTips   = "OccasionTips"
	FieldAdvice         = "Advice"
)

const adviceSeparator = "; "

// Field is one named value of an outfit record.
type Field struct {
	Name  string
	Value string
}

// OutfitRecord is the flat unit of persistence. Field order is stable.
type OutfitRecord struct {
	fields []Field
}

// NewOutfitRecord rebuilds a record from stored fields, e.g. when a store lists history.
func NewOutfitRecord(fields []Field) OutfitRecord {
	copied := make([]Field, len(fields))
	copy(copied, fields)
	return OutfitRecord{fields: copied}
}

// RecordContext is the request context folded into a record.
type RecordContext struct {
	Occasion string
	City     string
	Weather  Weather
}

// BuildRecord merges profile, context and joined section advice into one record.
func BuildRecord(profile Profile, ctx RecordContext, sections ...Section) OutfitRecord {
	temp, condition := "", ""
	switch {
	case ctx.Weather.Available:
		temp = strconv.FormatFloat(ctx.Weather.TempC, 'f', 1, 64)
		condition = ctx.Weather.Condition
	case strings.TrimSpace(ctx.City) != "":
		condition = "unavailable"
	}
	fields := []Field{
		{Name: FieldSize, Value: string(profile.Size())},
		{Name: FieldShape, Value: string(profile.Shape())},
		{Name: FieldUndertone, Value: string(profile.Undertone())},
		{Name: FieldOccasion, Value: strings.TrimSpace(ctx.Occasion)},
		{Name: FieldCity, Value: strings.TrimSpace(ctx.City)},
		{Name: FieldTemp, Value: temp},
		{Name: FieldWeather, Value: condition},
	}
	for _, section := range sections {
		fields = append(fields, Field{
			Name:  section.Field,
			Value: strings.Join(section.Tips.Texts(), adviceSeparator),
		})
	}
	return OutfitRecord{fields: fields}
}

// Keys returns field names in order.
func (r OutfitRecord) Keys() []string {
	out := make([]string, len(r.fields))
	for i, f := range r.fields {
		out[i] = f.Name
	}
	return out
}

// Values returns field values in key order.
func (r OutfitRecord) Values() []string {
	out := make([]string, len(r.fields))
	for i, f := range r.fields {
		out[i] = f.Value
	}
	return out
}

// Fields returns a copy of the ordered fields.
func (r OutfitRecord) Fields() []Field {
	out := make([]Field, len(r.fields))
	copy(out, r.fields)
	return out
}

// Get returns the value of a field.
func (r OutfitRecord) Get(name string) (string, bool) {
	for _, f := range r.fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// Map returns the record as a plain map for serialization.
func (r OutfitRecord) Map() map[string]string {
	out := make(map[string]string, len(r.fields))
	for _, f := range r.fields {
		out[f.Name] = f.Value
	}
	return out
}

// Len reports the number of fields.
func (r OutfitRecord) Len() int {
	return len(r.fields)
}

// SameLayout reports whether keys equal the record's field names in order.
func (r OutfitRecord) SameLayout(keys []string) bool {
	if len(keys) != len(r.fields) {
		return false
	}
	for i, f := range r.fields {
		if keys[i] != f.Name {
			return false
		}
	}
	return true
}
