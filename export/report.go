package export

import (
	"io"

	"github.com/polarcraft/optics/polarization"
)

// StokesReport is the JSON payload describing one polarization state:
// the raw Stokes parameters beside the derived quantities an analysis
// notebook wants first.
type StokesReport struct {
	StokesVector struct {
		S0 float64 `json:"S0"`
		S1 float64 `json:"S1"`
		S2 float64 `json:"S2"`
		S3 float64 `json:"S3"`
	} `json:"stokes_vector"`
	Parameters struct {
		DOP                 float64 `json:"DOP"`
		DOLP                float64 `json:"DOLP"`
		DOCP                float64 `json:"DOCP"`
		OrientationAngleDeg float64 `json:"orientation_angle_deg"`
		EllipticityAngleDeg float64 `json:"ellipticity_angle_deg"`
		Handedness          string  `json:"handedness"`
	} `json:"polarization_parameters"`
}

// NewStokesReport derives the report from a state.
func NewStokesReport(v polarization.StokesVector) StokesReport {
	var r StokesReport
	c := v.Components()
	r.StokesVector.S0 = c[0]
	r.StokesVector.S1 = c[1]
	r.StokesVector.S2 = c[2]
	r.StokesVector.S3 = c[3]

	e := v.Ellipse()
	r.Parameters.DOP = v.DOP()
	r.Parameters.DOLP = v.DOLP()
	r.Parameters.DOCP = v.DOCP()
	r.Parameters.OrientationAngleDeg = e.PsiDeg
	r.Parameters.EllipticityAngleDeg = e.ChiDeg
	r.Parameters.Handedness = e.Handedness.String()
	return r
}

// WriteStokesJSON writes the state's report in the metadata envelope.
func WriteStokesJSON(w io.Writer, v polarization.StokesVector, meta Metadata) error {
	return WriteJSON(w, NewStokesReport(v), meta)
}

// MuellerTable lays a Mueller matrix out as a four-column CSV table
// (rows become records, columns Col1..Col4).
func MuellerTable(m polarization.MuellerMatrix) Table {
	cols := make([][]float64, 4)
	for j := 0; j < 4; j++ {
		cols[j] = make([]float64, 4)
		for i := 0; i < 4; i++ {
			cols[j][i] = m.At(i, j)
		}
	}
	return Table{
		Headers: []string{"Col1", "Col2", "Col3", "Col4"},
		Columns: cols,
	}
}

// WriteMuellerCSV writes the matrix as CSV with the standard metadata
// block.
func WriteMuellerCSV(w io.Writer, m polarization.MuellerMatrix, meta Metadata) error {
	return WriteCSV(w, MuellerTable(m), meta)
}

// MuellerJSON is the JSON payload for a Mueller matrix.
type MuellerJSON struct {
	Name   string       `json:"matrix_name"`
	Shape  [2]int       `json:"shape"`
	Values [][4]float64 `json:"values"`
}

// WriteMuellerJSON writes the named matrix in the metadata envelope.
func WriteMuellerJSON(w io.Writer, name string, m polarization.MuellerMatrix, meta Metadata) error {
	doc := MuellerJSON{Name: name, Shape: [2]int{4, 4}}
	doc.Values = make([][4]float64, 4)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			doc.Values[i][j] = m.At(i, j)
		}
	}
	return WriteJSON(w, doc, meta)
}
