package tabular

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeRecords(t *testing.T, raw string) []Record {
	t.Helper()
	var records []Record
	require.NoError(t, json.Unmarshal([]byte(raw), &records))
	return records
}

func TestFlattenDropsExcludedColumns(t *testing.T) {
	records := decodeRecords(t, `[
		{"id":"1","name":"Acme UK"},
		{"id":"2","name":"Acme FR"}
	]`)

	table := Flatten(records).Drop(ExcludedColumns)

	assert.Equal(t, []string{"name"}, table.Columns)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"Acme UK"}, table.Rows[0])
	assert.Equal(t, []string{"Acme FR"}, table.Rows[1])
}

func TestFlattenNestedObject(t *testing.T) {
	records := decodeRecords(t, `[{"name":"Acme DE","address":{"city":"Berlin"}}]`)

	table := Flatten(records)

	assert.Equal(t, []string{"name", "address.city"}, table.Columns)
	assert.Equal(t, []string{"Acme DE", "Berlin"}, table.Rows[0])
}

func TestFlattenHeterogeneousRecords(t *testing.T) {
	records := decodeRecords(t, `[
		{"name":"Acme UK","country":"UK"},
		{"name":"Acme FR","sector":"retail"}
	]`)

	table := Flatten(records)

	// Union of keys in first-seen order, missing values blank.
	assert.Equal(t, []string{"name", "country", "sector"}, table.Columns)
	assert.Equal(t, []string{"Acme UK", "UK", ""}, table.Rows[0])
	assert.Equal(t, []string{"Acme FR", "", "retail"}, table.Rows[1])
}

func TestFlattenValueFormats(t *testing.T) {
	records := decodeRecords(t, `[{
		"name":"Acme",
		"employees":250,
		"ownership":99.5,
		"listed":false,
		"ceo":null,
		"tags":["retail","eu"]
	}]`)

	table := Flatten(records)

	assert.Equal(t, []string{"name", "employees", "ownership", "listed", "ceo", "tags"}, table.Columns)
	assert.Equal(t, []string{"Acme", "250", "99.5", "false", "", `["retail","eu"]`}, table.Rows[0])
}

func TestFlattenPreservesLargeNumbers(t *testing.T) {
	records := decodeRecords(t, `[{"registration":12345678901234567}]`)

	table := Flatten(records)

	assert.Equal(t, "12345678901234567", table.Rows[0][0])
}

func TestFlattenEmptyList(t *testing.T) {
	table := Flatten(nil)

	assert.Empty(t, table.Columns)
	assert.Empty(t, table.Rows)
}

func TestDropIsIdempotent(t *testing.T) {
	records := decodeRecords(t, `[{"id":"1","name":"Acme UK","_etag":"abc"}]`)

	once := Flatten(records).Drop(ExcludedColumns)
	twice := once.Drop(ExcludedColumns)

	assert.Equal(t, once.Columns, twice.Columns)
	assert.Equal(t, once.Rows, twice.Rows)
}

func TestDropMissingColumnsIsNoOp(t *testing.T) {
	records := decodeRecords(t, `[{"name":"Acme UK"}]`)

	table := Flatten(records).Drop(ExcludedColumns)

	assert.Equal(t, []string{"name"}, table.Columns)
}

func TestDropMatchesFlattenedNamesExactly(t *testing.T) {
	// Nested bookkeeping fields flatten to dotted paths and are therefore
	// not matched by the top-level denylist.
	records := decodeRecords(t, `[{"name":"Acme","meta":{"createdAt":"2024-01-01"}}]`)

	table := Flatten(records).Drop(ExcludedColumns)

	assert.Equal(t, []string{"name", "meta.createdAt"}, table.Columns)
}

func TestDropEveryColumn(t *testing.T) {
	records := decodeRecords(t, `[{"id":"1","_ts":9},{"id":"2","_ts":10}]`)

	table := Flatten(records).Drop(ExcludedColumns)

	// A zero-width table is still a table with one row per record.
	assert.Empty(t, table.Columns)
	require.Len(t, table.Rows, 2)
	assert.Empty(t, table.Rows[0])
}

func TestRecordRejectsNonObject(t *testing.T) {
	var rec Record
	assert.Error(t, json.Unmarshal([]byte(`[1,2]`), &rec))
	assert.Error(t, json.Unmarshal([]byte(`"text"`), &rec))
}

func TestRecordMarshalRoundTrip(t *testing.T) {
	raw := `{"name":"Acme DE","address":{"city":"Berlin","zip":"10115"},"rank":3}`

	var rec Record
	require.NoError(t, json.Unmarshal([]byte(raw), &rec))

	out, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.JSONEq(t, raw, string(out))
}
