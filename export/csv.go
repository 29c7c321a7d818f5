package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"
)

// sourceLabel opens every metadata block so downstream tooling can
// recognize the producer.
const sourceLabel = "polarcraft/optics"

// Metadata is a set of free-form key/value annotations written ahead of
// the data. Keys are emitted in sorted order so output is
// deterministic.
type Metadata map[string]string

// sortedKeys returns the metadata keys in stable order.
func (m Metadata) sortedKeys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Table is column-oriented numeric data ready for CSV export: one
// header per column, all columns the same length.
type Table struct {
	Headers []string
	Columns [][]float64
}

// validate enforces the shape contract.
func (t Table) validate() error {
	if len(t.Columns) == 0 {
		return ErrNoColumns
	}
	if len(t.Headers) != len(t.Columns) {
		return fmt.Errorf("%d headers for %d columns: %w", len(t.Headers), len(t.Columns), ErrColumnMismatch)
	}
	n := len(t.Columns[0])
	for i, col := range t.Columns {
		if len(col) != n {
			return fmt.Errorf("column %d has %d rows, want %d: %w", i, len(col), n, ErrColumnMismatch)
		}
	}
	return nil
}

// WriteCSV writes the table as CSV preceded by a "#"-commented metadata
// block:
//
//	# Exported from polarcraft/optics
//	# Timestamp: 2026-08-23T10:00:00Z
//	# <key>: <value>
//	#
//	header1,header2
//	...
//
// Values are rendered with strconv.FormatFloat 'g' for round-trip
// precision.
func WriteCSV(w io.Writer, t Table, meta Metadata) error {
	if err := t.validate(); err != nil {
		return err
	}
	if err := writeMetaComments(w, meta); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(t.Headers); err != nil {
		return fmt.Errorf("export: write headers: %w", err)
	}

	record := make([]string, len(t.Columns))
	for row := 0; row < len(t.Columns[0]); row++ {
		for col := range t.Columns {
			record[col] = strconv.FormatFloat(t.Columns[col][row], 'g', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("export: write row %d: %w", row, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// writeMetaComments emits the commented metadata block. A nil map still
// produces the source and timestamp lines.
func writeMetaComments(w io.Writer, meta Metadata) error {
	if _, err := fmt.Fprintf(w, "# Exported from %s\n", sourceLabel); err != nil {
		return fmt.Errorf("export: write metadata: %w", err)
	}
	if _, err := fmt.Fprintf(w, "# Timestamp: %s\n", time.Now().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("export: write metadata: %w", err)
	}
	for _, k := range meta.sortedKeys() {
		if _, err := fmt.Fprintf(w, "# %s: %s\n", k, meta[k]); err != nil {
			return fmt.Errorf("export: write metadata: %w", err)
		}
	}
	if _, err := io.WriteString(w, "#\n"); err != nil {
		return fmt.Errorf("export: write metadata: %w", err)
	}
	return nil
}

// CSVFile writes the table to path, creating parent directories as
// needed. A ".csv" extension is appended when missing.
func CSVFile(path string, t Table, meta Metadata) error {
	if filepath.Ext(path) != ".csv" {
		path += ".csv"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("export: create directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create file: %w", err)
	}
	defer f.Close()

	if err := WriteCSV(f, t, meta); err != nil {
		return err
	}
	return f.Close()
}
