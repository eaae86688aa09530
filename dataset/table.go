package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// /////////////////////////////////////////////////////////////////////////////
//  _____     _    _
// |_   _|_ _| |__| |___
//   | |/ _` | '_ \ / -_)
//   |_|\__,_|_.__/_\___|
//
// /////////////////////////////////////////////////////////////////////////////

// Table is an in-memory dataset: a header plus string-rendered rows. Builders
// produce one Table per dataset; serialization is a single CSV write.
type Table struct {
	Name     string
	FileName string
	Columns  []string
	Rows     [][]string

	// NumericColumns names the columns eligible for summary statistics
	// and histogram plotting. PlotColumn is the representative column
	// rendered when plots are requested.
	NumericColumns []string
	PlotColumn     string
}

func (t *Table) Append(row ...string) {
	if len(row) != len(t.Columns) {
		panic(fmt.Sprintf("dataset: %d values for %d columns in %s", len(row), len(t.Columns), t.Name))
	}
	t.Rows = append(t.Rows, row)
}

func (t *Table) NumRows() int {
	return len(t.Rows)
}

func (t *Table) NumColumns() int {
	return len(t.Columns)
}

func (t *Table) columnIndex(name string) (int, error) {
	for i, col := range t.Columns {
		if col == name {
			return i, nil
		}
	}
	return -1, fmt.Errorf("no column named %s in %s", name, t.Name)
}

// Float64Column parses the named column into float64 values.
func (t *Table) Float64Column(name string) ([]float64, error) {
	colIndex, colIndexErr := t.columnIndex(name)
	if colIndexErr != nil {
		return nil, colIndexErr
	}
	values := make([]float64, len(t.Rows))
	for i, row := range t.Rows {
		parsed, parseErr := strconv.ParseFloat(row[colIndex], 64)
		if parseErr != nil {
			return nil, fmt.Errorf("column %s row %d: %w", name, i, parseErr)
		}
		values[i] = parsed
	}
	return values, nil
}

// StringColumn returns the named column's raw values.
func (t *Table) StringColumn(name string) ([]string, error) {
	colIndex, colIndexErr := t.columnIndex(name)
	if colIndexErr != nil {
		return nil, colIndexErr
	}
	values := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		values[i] = row[colIndex]
	}
	return values, nil
}

// WriteCSV serializes the table under outputDirectory, creating the
// directory if needed, and returns the written file path.
func (t *Table) WriteCSV(outputDirectory string) (string, error) {
	mkdirErr := os.MkdirAll(outputDirectory, 0755)
	if mkdirErr != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", outputDirectory, mkdirErr)
	}
	outputPath := filepath.Join(outputDirectory, t.FileName)
	outputFile, outputFileErr := os.Create(outputPath)
	if outputFileErr != nil {
		return "", fmt.Errorf("failed to create %s: %w", outputPath, outputFileErr)
	}
	defer outputFile.Close()

	csvWriter := csv.NewWriter(outputFile)
	writeErr := csvWriter.Write(t.Columns)
	if writeErr != nil {
		return "", writeErr
	}
	writeErr = csvWriter.WriteAll(t.Rows)
	if writeErr != nil {
		return "", writeErr
	}
	csvWriter.Flush()
	return outputPath, csvWriter.Error()
}

func formatFloat1(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
