package dataset

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func testTable() *Table {
	tbl := &Table{
		Name:     "Test",
		FileName: "test.csv",
		Columns:  []string{"id", "value"},
	}
	tbl.Append("T001", "1.5")
	tbl.Append("T002", "2.5")
	return tbl
}

func TestWriteCSVRoundTrip(t *testing.T) {
	tbl := testTable()
	outputPath, writeErr := tbl.WriteCSV(t.TempDir())
	if writeErr != nil {
		t.Fatal(writeErr)
	}

	f, openErr := os.Open(outputPath)
	if openErr != nil {
		t.Fatal(openErr)
	}
	defer f.Close()
	records, readErr := csv.NewReader(f).ReadAll()
	if readErr != nil {
		t.Fatal(readErr)
	}
	if len(records) != 3 {
		t.Fatalf("read %d records, want header + 2 rows", len(records))
	}
	if !reflect.DeepEqual(records[0], tbl.Columns) {
		t.Errorf("header = %v, want %v", records[0], tbl.Columns)
	}
	if !reflect.DeepEqual(records[1], tbl.Rows[0]) {
		t.Errorf("row = %v, want %v", records[1], tbl.Rows[0])
	}
}

func TestWriteCSVCreatesDirectory(t *testing.T) {
	nested := filepath.Join(t.TempDir(), "a", "b")
	outputPath, writeErr := testTable().WriteCSV(nested)
	if writeErr != nil {
		t.Fatal(writeErr)
	}
	if _, statErr := os.Stat(outputPath); statErr != nil {
		t.Fatal(statErr)
	}
}

func TestAppendArityPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for wrong row arity")
		}
	}()
	testTable().Append("only-one-value")
}

func TestFloat64Column(t *testing.T) {
	tbl := testTable()
	values, valuesErr := tbl.Float64Column("value")
	if valuesErr != nil {
		t.Fatal(valuesErr)
	}
	if !reflect.DeepEqual(values, []float64{1.5, 2.5}) {
		t.Errorf("values = %v", values)
	}
	_, missingErr := tbl.Float64Column("nope")
	if missingErr == nil {
		t.Error("expected error for unknown column")
	}
}
