package export

import "errors"

// Sentinel errors shared by the CSV and JSON writers.
var (
	// ErrNoColumns indicates a table or plot export with no columns.
	ErrNoColumns = errors.New("export: no columns to write")

	// ErrColumnMismatch indicates columns of unequal length, or a
	// header count that does not match the column count.
	ErrColumnMismatch = errors.New("export: column lengths do not match")
)
