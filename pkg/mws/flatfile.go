package mws

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// buildFlatFile renders a tab-separated listings feed: the template
// identifier line, the header row twice (the format requires the
// duplicate), then one row per record, encoded in ISO-8859-1 as the flat
// file processor expects.
func buildFlatFile(templateLine, header []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = '\t'

	records := [][]string{templateLine, header, header}
	records = append(records, rows...)
	if err := w.WriteAll(records); err != nil {
		return nil, fmt.Errorf("writing flat file: %w", err)
	}

	encoded, _, err := transform.Bytes(charmap.ISO8859_1.NewEncoder(), buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("encoding flat file to ISO-8859-1: %w", err)
	}
	return encoded, nil
}
