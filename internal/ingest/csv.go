// Package ingest parses uploaded CSV exports into row-aligned tables for the
// aggregation core. It owns the load boundary: the core is never handed an
// empty or unreadable upload.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/omnicampus/survey-server/internal/survey"
)

// ErrEmptyTable indicates the upload contained no header row.
var ErrEmptyTable = errors.New("empty table")

// ReadTable parses a CSV export. The first record is the header; question
// headers in the export contain embedded newlines, which the quoted-field
// handling of the CSV format preserves verbatim. Every data row must match
// the header width.
func ReadTable(r io.Reader) (*survey.Table, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmptyTable
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(rows)+1, err)
		}
		rows = append(rows, record)
	}

	table, err := survey.NewTable(header, rows)
	if err != nil {
		return nil, fmt.Errorf("build table: %w", err)
	}
	return table, nil
}
