// Package csvexport renders fetched collections as RFC 4180 CSV, matching
// the dashboard's export behaviour: one header row, empty cells for nil
// values, and a date-suffixed filename.
package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"
)

// Row maps column name to value. Values render with fmt.Sprintf("%v");
// nil renders as the empty string.
type Row map[string]interface{}

// Write emits a header row followed by one record per row, in the given
// column order. Fields containing commas or quotes are quoted with embedded
// quotes doubled (encoding/csv's RFC 4180 behaviour).
func Write(w io.Writer, columns []string, rows []Row) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(columns); err != nil {
		return err
	}

	record := make([]string, len(columns))
	for _, row := range rows {
		for i, col := range columns {
			record[i] = cell(row[col])
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func cell(v interface{}) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%v", v)
}

// Filename appends the date to a base name: "equipos" -> "equipos-2026-09-01.csv".
func Filename(base string, now time.Time) string {
	return fmt.Sprintf("%s-%s.csv", base, now.Format("2006-01-02"))
}
