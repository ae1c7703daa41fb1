package outfitstore

import (
	"fmt"

	"github.com/yanqian/styling-advisor/internal/domain/styling"
)

func schemaMismatch(established, got []string) error {
	return fmt.Errorf("%w: established %v, got %v", styling.ErrSchemaMismatch, established, got)
}

func toRecord(header, values []string) styling.OutfitRecord {
	fields := make([]styling.Field, len(header))
	for i, name := range header {
		value := ""
		if i < len(values) {
			value = values[i]
		}
		fields[i] = styling.Field{Name: name, Value: value}
	}
	return styling.NewOutfitRecord(fields)
}

// newestFirst converts rows stored oldest first into at most limit records, newest first.
func newestFirst(header []string, rows [][]string, limit int) []styling.OutfitRecord {
	if limit <= 0 || limit > len(rows) {
		limit = len(rows)
	}
	out := make([]styling.OutfitRecord, 0, limit)
	for i := len(rows) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, toRecord(header, rows[i]))
	}
	return out
}
