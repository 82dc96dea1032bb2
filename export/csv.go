// Package export writes field matrices and vectors as delimited text.
//
// The format mirrors the analysis exports consumed downstream: one row per
// node, comma-separated values, no header, round-trippable float formatting.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// WriteMatrix writes m as CSV, one record per row.
func WriteMatrix(w io.Writer, m [][]float64) error {
	cw := csv.NewWriter(w)
	record := []string{}

	for i, row := range m {
		record = record[:0]
		for _, v := range row {
			record = append(record, formatFloat(v))
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("export: row %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteVector writes v as CSV with one value per record.
func WriteVector(w io.Writer, v []float64) error {
	cw := csv.NewWriter(w)

	for i, x := range v {
		if err := cw.Write([]string{formatFloat(x)}); err != nil {
			return fmt.Errorf("export: value %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// SaveMatrix writes m as CSV to path, creating or truncating the file.
func SaveMatrix(path string, m [][]float64) error {
	return saveTo(path, func(w io.Writer) error { return WriteMatrix(w, m) })
}

// SaveVector writes v as CSV to path, creating or truncating the file.
func SaveVector(path string, v []float64) error {
	return saveTo(path, func(w io.Writer) error { return WriteVector(w, v) })
}

func saveTo(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	if err := write(f); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
