package dataset

import (
	"testing"
)

const testSeed = 2025

func floatColumn(t *testing.T, tbl *Table, name string) []float64 {
	t.Helper()
	values, valuesErr := tbl.Float64Column(name)
	if valuesErr != nil {
		t.Fatal(valuesErr)
	}
	return values
}

func stringColumn(t *testing.T, tbl *Table, name string) []string {
	t.Helper()
	values, valuesErr := tbl.StringColumn(name)
	if valuesErr != nil {
		t.Fatal(valuesErr)
	}
	return values
}

// checkRange fails if any value of the named column lies outside [lower, upper].
func checkRange(t *testing.T, tbl *Table, name string, lower float64, upper float64) {
	t.Helper()
	for i, v := range floatColumn(t, tbl, name) {
		if v < lower || v > upper {
			t.Fatalf("%s: %s row %d = %g outside [%g, %g]", tbl.Name, name, i, v, lower, upper)
		}
	}
}

// checkMembership fails if any value of the named column is outside the
// allowed set.
func checkMembership(t *testing.T, tbl *Table, name string, allowed []string) {
	t.Helper()
	valid := make(map[string]bool, len(allowed))
	for _, v := range allowed {
		valid[v] = true
	}
	for i, v := range stringColumn(t, tbl, name) {
		if !valid[v] {
			t.Fatalf("%s: %s row %d = %q not in %v", tbl.Name, name, i, v, allowed)
		}
	}
}

// checkUniqueIDs fails when the named column holds duplicate values.
func checkUniqueIDs(t *testing.T, tbl *Table, name string) {
	t.Helper()
	seen := make(map[string]bool)
	for i, v := range stringColumn(t, tbl, name) {
		if seen[v] {
			t.Fatalf("%s: duplicate %s %q at row %d", tbl.Name, name, v, i)
		}
		seen[v] = true
	}
}
