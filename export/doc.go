// Package export writes sweep results, matrices and polarization
// reports as CSV or JSON for analysis in other tools.
//
// Both formats open with a metadata block naming the producer and a
// timestamp plus caller annotations:
//
//	CSV — "#"-commented lines ahead of the header row
//	JSON — a top-level {"metadata": {...}, "data": {...}} envelope
//
// Metadata keys are written in sorted order, so repeated exports of the
// same data diff cleanly (only the timestamp moves). Writers take an
// io.Writer; the *File helpers add directory creation and extension
// handling on top.
//
// Complex values marshal as {"real": r, "imag": i} via the Complex
// type, since encoding/json has no complex support.
package export
