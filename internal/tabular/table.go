package tabular

import (
	"bytes"
	"encoding/csv"
)

// Table is a flat, column-ordered view of a record list. Row order mirrors
// the source list; column order is fixed by the flattener.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Drop returns a copy of the table without the named columns. Names that are
// not present are ignored.
func (t *Table) Drop(names map[string]struct{}) *Table {
	keep := []int{}
	out := &Table{}
	for i, col := range t.Columns {
		if _, excluded := names[col]; excluded {
			continue
		}
		keep = append(keep, i)
		out.Columns = append(out.Columns, col)
	}
	out.Rows = make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		slim := make([]string, len(keep))
		for j, idx := range keep {
			slim[j] = row[idx]
		}
		out.Rows[i] = slim
	}
	return out
}

// Head returns a table holding at most n leading rows.
func (t *Table) Head(n int) *Table {
	if n < 0 {
		n = 0
	}
	if n > len(t.Rows) {
		n = len(t.Rows)
	}
	return &Table{Columns: t.Columns, Rows: t.Rows[:n]}
}

// CSV serializes the table as UTF-8 CSV bytes: a header row of column names
// followed by one record per row, quoted per encoding/csv rules.
func (t *Table) CSV() ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.Write(t.Columns); err != nil {
		return nil, err
	}
	for _, row := range t.Rows {
		if err := writer.Write(row); err != nil {
			return nil, err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
