package catalog

import (
	"errors"
	"strings"
	"testing"
)

func validDataset() *RawDataset {
	return &RawDataset{
		Columns: RequiredColumns,
		Rows: []map[string]string{
			{
				ColProgramName:  "STEM Academy",
				ColUniversities: "State University",
				ColGradeLevel:   `["10", "11"]`,
				ColSubjects:     "Math, Science",
				ColDescription:  `Hands-on "robotics" and coding`,
				ColRestriction:  "",
			},
		},
	}
}

func TestPreprocess(t *testing.T) {
	entries, err := Preprocess(validDataset())
	if err != nil {
		t.Fatalf("Preprocess() error = %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	e := entries[0]
	if e.Name != "STEM Academy" {
		t.Errorf("Name = %q, want %q", e.Name, "STEM Academy")
	}
	if len(e.GradeLevels) != 2 || e.GradeLevels[0] != "10" || e.GradeLevels[1] != "11" {
		t.Errorf("GradeLevels = %v, want [10 11]", e.GradeLevels)
	}
	if len(e.Subjects) != 2 || e.Subjects[0] != "math" || e.Subjects[1] != "science" {
		t.Errorf("Subjects = %v, want [math science]", e.Subjects)
	}
	if e.Description != "Hands-on robotics and coding" {
		t.Errorf("Description = %q", e.Description)
	}

	// No token may carry bracket or quote noise or be empty.
	for _, tok := range append(append([]string{}, e.GradeLevels...), e.Subjects...) {
		if tok == "" || strings.ContainsAny(tok, `[]()"'`) {
			t.Errorf("token %q is not clean", tok)
		}
	}
}

func TestPreprocessMissingColumns(t *testing.T) {
	ds := validDataset()
	ds.Columns = []string{ColProgramName, ColDescription}

	_, err := Preprocess(ds)
	if err == nil {
		t.Fatal("expected SchemaError, got nil")
	}

	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected *SchemaError, got %T", err)
	}
	if len(schemaErr.Missing) != 4 {
		t.Errorf("Missing = %v, want 4 columns", schemaErr.Missing)
	}
}

func TestPreprocessDropsUnmatchableRows(t *testing.T) {
	ds := validDataset()
	ds.Rows = append(ds.Rows, map[string]string{
		ColProgramName:  "Ghost Program",
		ColUniversities: "",
		ColGradeLevel:   `[""]`, // normalizes to empty
		ColSubjects:     "Art",
		ColDescription:  "x",
		ColRestriction:  "",
	})

	entries, err := Preprocess(ds)
	if err != nil {
		t.Fatalf("Preprocess() error = %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected unmatchable row to be dropped, got %d entries", len(entries))
	}
	if entries[0].Name == "Ghost Program" {
		t.Error("kept the wrong row")
	}
}

func TestReadCSV(t *testing.T) {
	csvData := `Grade Level,Subjects,Program Name,Universities,Description,For Specific Students
"10, 11","Math, Science",STEM Academy,State University,Hands-on robotics and coding,
"9",Art,Summer Arts,Arts College,Studio painting intensive,Women
`
	ds, err := ReadCSV(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}
	if len(ds.Columns) != 6 {
		t.Errorf("Columns = %v, want 6", ds.Columns)
	}
	if len(ds.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(ds.Rows))
	}
	if ds.Rows[1][ColRestriction] != "Women" {
		t.Errorf("restriction = %q, want Women", ds.Rows[1][ColRestriction])
	}

	entries, err := Preprocess(ds)
	if err != nil {
		t.Fatalf("Preprocess() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
}

func TestReadCSVEmpty(t *testing.T) {
	if _, err := ReadCSV(strings.NewReader("")); err == nil {
		t.Error("expected error for empty input")
	}
}
