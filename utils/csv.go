package utils

import (
	"encoding/csv"
	"io"
)

// WriteCSV streams a header row followed by the given records. Used by the
// history export; the caller decides columns and formatting.
func WriteCSV(w io.Writer, header []string, records [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, rec := range records {
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
