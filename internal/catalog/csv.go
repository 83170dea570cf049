package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadCSV parses a catalog spreadsheet export into a RawDataset. The first
// record is the column header; short rows are tolerated (missing trailing
// cells read as empty).
func ReadCSV(r io.Reader) (*RawDataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // exports are ragged

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("catalog file is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog header: %w", err)
	}

	columns := make([]string, len(header))
	for i, c := range header {
		columns[i] = strings.TrimSpace(c)
	}

	ds := &RawDataset{Columns: columns}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog row: %w", err)
		}

		row := make(map[string]string, len(columns))
		for i, col := range columns {
			if i < len(record) {
				row[col] = record[i]
			} else {
				row[col] = ""
			}
		}
		ds.Rows = append(ds.Rows, row)
	}

	return ds, nil
}

// LoadCSV reads and preprocesses a catalog CSV file in one step.
func LoadCSV(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()

	ds, err := ReadCSV(f)
	if err != nil {
		return nil, err
	}

	return Preprocess(ds)
}
