package outfitstore

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/yanqian/styling-advisor/internal/domain/styling"
)

// CSVStore appends outfit records to a flat CSV file. The first write establishes the header.
type CSVStore struct {
	mu   sync.Mutex
	path string
}

// NewCSVStore constructs a store writing to path.
func NewCSVStore(path string) *CSVStore {
	return &CSVStore{path: path}
}

// Append implements styling.OutfitStore.
func (s *CSVStore) Append(_ context.Context, record styling.OutfitRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	header, err := s.readHeader()
	if err != nil {
		return err
	}
	if header != nil && !record.SameLayout(header) {
		return schemaMismatch(header, record.Keys())
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create outfit dir: %w", err)
		}
	}
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open outfit file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if header == nil {
		if err := w.Write(record.Keys()); err != nil {
			return fmt.Errorf("write outfit header: %w", err)
		}
	}
	if err := w.Write(record.Values()); err != nil {
		return fmt.Errorf("write outfit row: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush outfit file: %w", err)
	}
	return f.Sync()
}

// List returns up to limit records, newest first.
func (s *CSVStore) List(_ context.Context, limit int) ([]styling.OutfitRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open outfit file: %w", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read outfit file: %w", err)
	}
	if len(rows) < 2 {
		return nil, nil
	}
	header, rows := rows[0], rows[1:]
	return newestFirst(header, rows, limit), nil
}

func (s *CSVStore) readHeader() ([]string, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open outfit file: %w", err)
	}
	defer f.Close()

	header, err := csv.NewReader(f).Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("read outfit header: %w", err)
	}
	return header, nil
}

var _ styling.OutfitStore = (*CSVStore)(nil)
