package repository

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// CSVLog is an append-only CSV file with a header row written on first
// use. Appends from concurrent requests are serialized.
type CSVLog struct {
	path   string
	header []string
	mu     sync.Mutex
}

func NewCSVLog(path string, header ...string) *CSVLog {
	return &CSVLog{path: path, header: header}
}

func (l *CSVLog) Path() string {
	return l.path
}

func (l *CSVLog) Append(row []string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}

	_, statErr := os.Stat(l.path)
	exists := statErr == nil

	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", l.path, err)
	}

	w := csv.NewWriter(f)
	if !exists && len(l.header) > 0 {
		if err := w.Write(l.header); err != nil {
			f.Close()
			return fmt.Errorf("write header: %w", err)
		}
	}
	if err := w.Write(row); err != nil {
		f.Close()
		return fmt.Errorf("write row: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush %s: %w", l.path, err)
	}
	return f.Close()
}

// Records returns every data row keyed by header name, oldest first.
func (l *CSVLog) Records() ([]map[string]string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.records()
}

func (l *CSVLog) records() ([]map[string]string, error) {
	f, err := os.Open(l.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", l.path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", l.path, err)
	}
	if len(rows) == 0 {
		return []map[string]string{}, nil
	}

	header := rows[0]
	out := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(row) {
				rec[name] = row[i]
			}
		}
		out = append(out, rec)
	}
	return out, nil
}

// Update rewrites the file after fn mutated the records in place.
func (l *CSVLog) Update(fn func(records []map[string]string) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	records, err := l.records()
	if err != nil {
		return err
	}
	if err := fn(records); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(l.path), filepath.Base(l.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, l.header)
	for _, rec := range records {
		row := make([]string, len(l.header))
		for i, name := range l.header {
			row[i] = rec[name]
		}
		rows = append(rows, row)
	}
	if err := w.WriteAll(rows); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", l.path, err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), l.path)
}
