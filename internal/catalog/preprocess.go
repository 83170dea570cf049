package catalog

import (
	"fmt"
	"strings"
)

// Mandatory dataset columns. Missing any of these is a load-time failure
// for the whole dataset, not a per-row skip.
const (
	ColGradeLevel   = "Grade Level"
	ColSubjects     = "Subjects"
	ColProgramName  = "Program Name"
	ColUniversities = "Universities"
	ColDescription  = "Description"
	ColRestriction  = "For Specific Students"
)

// RequiredColumns lists the columns a raw dataset must carry.
var RequiredColumns = []string{
	ColGradeLevel,
	ColSubjects,
	ColProgramName,
	ColUniversities,
	ColDescription,
	ColRestriction,
}

// RawDataset is an unprocessed tabular catalog: a column schema plus rows
// keyed by column name.
type RawDataset struct {
	Columns []string
	Rows    []map[string]string
}

// SchemaError reports mandatory columns missing from a dataset schema.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("dataset missing required columns: %s", strings.Join(e.Missing, ", "))
}

// Preprocess validates the dataset schema once and converts every row into
// a normalized Entry. Grade and subject fields are decomposed into sets of
// cleaned tokens; description and restriction are cleaned as scalars. Rows
// whose grade or subject field normalizes to empty are dropped: an entry
// that cannot be matched on either axis has no business in the catalog.
func Preprocess(ds *RawDataset) ([]Entry, error) {
	if err := checkSchema(ds.Columns); err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(ds.Rows))
	for _, row := range ds.Rows {
		grades := SplitField(row[ColGradeLevel])
		subjects := SplitField(row[ColSubjects])
		if len(grades) == 0 || len(subjects) == 0 {
			continue
		}

		entries = append(entries, Entry{
			Name:         CleanText(row[ColProgramName]),
			Universities: CleanText(row[ColUniversities]),
			GradeLevels:  grades,
			Subjects:     subjects,
			Description:  CleanText(row[ColDescription]),
			Restriction:  CleanText(row[ColRestriction]),
		})
	}

	return entries, nil
}

func checkSchema(columns []string) error {
	have := make(map[string]bool, len(columns))
	for _, c := range columns {
		have[strings.TrimSpace(c)] = true
	}

	var missing []string
	for _, want := range RequiredColumns {
		if !have[want] {
			missing = append(missing, want)
		}
	}

	if len(missing) > 0 {
		return &SchemaError{Missing: missing}
	}
	return nil
}
