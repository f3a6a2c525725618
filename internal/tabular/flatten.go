package tabular

import (
	"encoding/json"
	"strconv"
)

// ExcludedColumns is the fixed denylist of internal bookkeeping fields that
// are never previewed or exported. Matching is against the flattened column
// name.
var ExcludedColumns = map[string]struct{}{
	"id":                 {},
	"uId":                {},
	"dType":              {},
	"main_parent_id":     {},
	"record_update_date": {},
	"createdBy":          {},
	"createdAt":          {},
	"updatedBy":          {},
	"updatedAt":          {},
	"version":            {},
	"active":             {},
	"archived":           {},
	"domains":            {},
	"validatedAt":        {},
	"_rid":               {},
	"_self":              {},
	"_etag":              {},
	"_attachments":       {},
	"_ts":                {},
}

// Flatten turns a record list into a table. Columns are the union of all
// dotted field paths across records, in first-seen order; records missing a
// column get an empty cell. Nested objects expand to "parent.child" paths,
// arrays render as compact JSON.
func Flatten(records []Record) *Table {
	index := map[string]int{}
	table := &Table{}

	cells := make([]map[string]string, len(records))
	for i, rec := range records {
		row := map[string]string{}
		flattenInto(row, table, index, "", rec)
		cells[i] = row
	}

	table.Rows = make([][]string, len(records))
	for i, row := range cells {
		out := make([]string, len(table.Columns))
		for j, col := range table.Columns {
			out[j] = row[col]
		}
		table.Rows[i] = out
	}
	return table
}

func flattenInto(row map[string]string, table *Table, index map[string]int, prefix string, rec Record) {
	for _, f := range rec.Fields {
		path := f.Key
		if prefix != "" {
			path = prefix + "." + f.Key
		}
		if nested, ok := f.Value.(Record); ok {
			flattenInto(row, table, index, path, nested)
			continue
		}
		if _, seen := index[path]; !seen {
			index[path] = len(table.Columns)
			table.Columns = append(table.Columns, path)
		}
		row[path] = formatValue(f.Value)
	}
}

func formatValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case json.Number:
		return val.String()
	default:
		// arrays and anything else: compact JSON text
		raw, err := json.Marshal(val)
		if err != nil {
			return ""
		}
		return string(raw)
	}
}
