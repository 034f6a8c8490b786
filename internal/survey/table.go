package survey

import (
	"fmt"

	"github.com/omnicampus/survey-server/internal/schema"
)

// Table is an immutable, row-aligned view of a parsed survey export: named
// columns over rows of raw cell values. Row i of every column belongs to
// respondent i, and projection preserves that alignment.
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]string
}

// NewTable builds a Table from a header and raw rows. Every row must have
// exactly one cell per column. If a column name repeats, the first occurrence
// wins; survey exports occasionally duplicate free-text headers and only the
// schema-referenced columns matter downstream.
func NewTable(columns []string, rows [][]string) (*Table, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("table has no columns")
	}

	index := make(map[string]int, len(columns))
	for i, name := range columns {
		if _, ok := index[name]; !ok {
			index[name] = i
		}
	}

	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("row %d has %d cells, expected %d", i, len(row), len(columns))
		}
	}

	return &Table{columns: columns, index: index, rows: rows}, nil
}

// Columns returns the header in source order.
func (t *Table) Columns() []string {
	return t.columns
}

// RowCount returns the number of data rows.
func (t *Table) RowCount() int {
	return len(t.rows)
}

// Column returns the raw cells of the named column, in row order.
// The second return value reports whether the column exists.
func (t *Table) Column(name string) ([]string, bool) {
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	out := make([]string, len(t.rows))
	for r, row := range t.rows {
		out[r] = row[i]
	}
	return out, true
}

// Head returns up to n leading rows, for previewing an upload.
func (t *Table) Head(n int) [][]string {
	if n > len(t.rows) {
		n = len(t.rows)
	}
	if n < 0 {
		n = 0
	}
	out := make([][]string, n)
	for i := 0; i < n; i++ {
		row := make([]string, len(t.rows[i]))
		copy(row, t.rows[i])
		out[i] = row
	}
	return out
}

// Select projects the question columns out of the table and renames each to
// its short label, keeping rows aligned with the source table. Every question
// text must exist in the table; callers validate against the schema first.
func (t *Table) Select(questions []schema.Question) (*Table, error) {
	cols := make([]int, len(questions))
	names := make([]string, len(questions))
	for i, q := range questions {
		idx, ok := t.index[q.Text]
		if !ok {
			return nil, fmt.Errorf("column %q not found in table", q.Text)
		}
		cols[i] = idx
		names[i] = q.Label
	}

	rows := make([][]string, len(t.rows))
	for r, row := range t.rows {
		projected := make([]string, len(cols))
		for i, c := range cols {
			projected[i] = row[c]
		}
		rows[r] = projected
	}

	return NewTable(names, rows)
}
