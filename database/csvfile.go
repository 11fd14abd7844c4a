package database

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Table is a whole CSV file: a header row and the data rows below it.
type Table struct {
	Header []string
	Rows   [][]string
}

// Index returns the position of column name in the header, or -1.
func (t Table) Index(name string) int {
	for i, h := range t.Header {
		if strings.TrimSpace(h) == name {
			return i
		}
	}
	return -1
}

// Get returns the named column of a row, or "" when either is missing.
func (t Table) Get(row []string, name string) string {
	i := t.Index(name)
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// AppendRecord adds a row holding values by column name. Columns missing from
// the header are added at the end and existing rows are left blank there.
func (t *Table) AppendRecord(columns []string, values []string) {
	for _, c := range columns {
		if t.Index(c) < 0 {
			t.Header = append(t.Header, c)
		}
	}
	row := make([]string, len(t.Header))
	for i, c := range columns {
		row[t.Index(c)] = values[i]
	}
	t.Rows = append(t.Rows, row)
}

var fileLocks sync.Map

// FileLock returns the process-wide mutex guarding path. It does not protect
// against other processes writing the same file.
func FileLock(path string) *sync.Mutex {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	l, _ := fileLocks.LoadOrStore(abs, &sync.Mutex{})
	return l.(*sync.Mutex)
}

// ReadTable reads the whole file. A missing file reads as an empty table with
// the given fallback header.
func ReadTable(path string, fallbackHeader []string) (Table, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return Table{Header: append([]string(nil), fallbackHeader...)}, nil
	}
	if err != nil {
		return Table{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return Table{Header: append([]string(nil), fallbackHeader...)}, nil
	}
	if err != nil {
		return Table{}, fmt.Errorf("read header of %s: %w", path, err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	rows, err := r.ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("read %s: %w", path, err)
	}
	return Table{Header: header, Rows: rows}, nil
}

// WriteTable rewrites the whole file through a temp file and rename.
func WriteTable(path string, t Table) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.Write(t.Header); err != nil {
		tmp.Close()
		return fmt.Errorf("write header of %s: %w", path, err)
	}
	if err := w.WriteAll(t.Rows); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file for %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
