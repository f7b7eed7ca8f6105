package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// WriteCSV writes rows with the `set,element` header the benchmark
// scripts expect.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"set", "element"}); err != nil {
		return err
	}
	record := make([]string, 2)
	for _, r := range rows {
		record[0] = strconv.FormatInt(r.Set, 10)
		record[1] = strconv.FormatInt(r.Element, 10)
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV reads a two-column `set,element` file written by WriteCSV (or
// the original benchmark generator).
func ReadCSV(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("dataset: reading header: %w", err)
	}
	if header[0] != "set" || header[1] != "element" {
		return nil, fmt.Errorf("dataset: want header set,element, got %s,%s", header[0], header[1])
	}

	var rows []Row
	for {
		record, err := cr.Read()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		set, err := strconv.ParseInt(record[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("dataset: bad set id %q: %w", record[0], err)
		}
		element, err := strconv.ParseInt(record[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("dataset: bad element %q: %w", record[1], err)
		}
		rows = append(rows, Row{Set: set, Element: element})
	}
}
