package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// Complex marshals a complex value as {"real": ..., "imag": ...},
// since encoding/json has no native complex support.
type Complex complex128

// MarshalJSON implements json.Marshaler.
func (c Complex) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Real float64 `json:"real"`
		Imag float64 `json:"imag"`
	}{real(complex128(c)), imag(complex128(c))})
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Complex) UnmarshalJSON(b []byte) error {
	var parts struct {
		Real float64 `json:"real"`
		Imag float64 `json:"imag"`
	}
	if err := json.Unmarshal(b, &parts); err != nil {
		return fmt.Errorf("export: decode complex: %w", err)
	}
	*c = Complex(complex(parts.Real, parts.Imag))
	return nil
}

// envelope is the top-level JSON document: a metadata object (source,
// timestamp, caller annotations) beside the payload.
type envelope struct {
	Metadata map[string]string `json:"metadata"`
	Data     any               `json:"data"`
}

// WriteJSON writes data wrapped in the standard metadata envelope,
// indented with two spaces.
func WriteJSON(w io.Writer, data any, meta Metadata) error {
	env := envelope{
		Metadata: map[string]string{
			"source":    sourceLabel,
			"timestamp": time.Now().Format(time.RFC3339),
		},
		Data: data,
	}
	for k, v := range meta {
		env.Metadata[k] = v
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(env); err != nil {
		return fmt.Errorf("export: encode json: %w", err)
	}
	return nil
}

// JSONFile writes the envelope to path, creating parent directories as
// needed. A ".json" extension is appended when missing.
func JSONFile(path string, data any, meta Metadata) error {
	if filepath.Ext(path) != ".json" {
		path += ".json"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("export: create directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create file: %w", err)
	}
	defer f.Close()

	if err := WriteJSON(f, data, meta); err != nil {
		return err
	}
	return f.Close()
}

// Curve is one labelled y-series of a plot.
type Curve struct {
	Label  string    `json:"label"`
	Values []float64 `json:"values"`
}

// PlotData bundles one x-axis with any number of y-curves, the shape
// produced by every sweep helper in this module.
type PlotData struct {
	XLabel string
	X      []float64
	Curves []Curve
}

// Table converts the plot data to CSV columns: x first, then each
// curve in order.
func (p PlotData) Table() Table {
	headers := make([]string, 0, len(p.Curves)+1)
	columns := make([][]float64, 0, len(p.Curves)+1)
	headers = append(headers, p.XLabel)
	columns = append(columns, p.X)
	for _, c := range p.Curves {
		headers = append(headers, c.Label)
		columns = append(columns, c.Values)
	}
	return Table{Headers: headers, Columns: columns}
}

// plotJSON is the nested JSON form of PlotData.
type plotJSON struct {
	X struct {
		Label  string    `json:"label"`
		Values []float64 `json:"values"`
	} `json:"x"`
	Y []Curve `json:"y"`
}

// WriteCSV writes the curves as a CSV table.
func (p PlotData) WriteCSV(w io.Writer, meta Metadata) error {
	return WriteCSV(w, p.Table(), meta)
}

// WriteJSON writes the curves in the nested x/y JSON layout.
func (p PlotData) WriteJSON(w io.Writer, meta Metadata) error {
	if err := p.Table().validate(); err != nil {
		return err
	}
	var doc plotJSON
	doc.X.Label = p.XLabel
	doc.X.Values = p.X
	doc.Y = p.Curves
	return WriteJSON(w, doc, meta)
}
