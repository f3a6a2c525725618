package tabular

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Record is one JSON object with its key order preserved. The subsidiaries
// endpoint returns heterogeneous records, so fields are a list rather than
// a fixed struct.
type Record struct {
	Fields []Field
}

type Field struct {
	Key   string
	Value interface{} // string, json.Number, bool, nil, Record or []interface{}
}

func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected JSON object, got %v", tok)
	}
	r.Fields = nil
	return r.decodeFields(dec)
}

func (r *Record) decodeFields(dec *json.Decoder) error {
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", keyTok)
		}
		val, err := decodeValue(dec)
		if err != nil {
			return err
		}
		r.Fields = append(r.Fields, Field{Key: key, Value: val})
	}
	// consume the closing brace
	_, err := dec.Token()
	return err
}

func decodeValue(dec *json.Decoder) (interface{}, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		// string, json.Number, bool or nil
		return tok, nil
	}
	if delim == '{' {
		var nested Record
		if err := nested.decodeFields(dec); err != nil {
			return nil, err
		}
		return nested, nil
	}
	// '[' — arrays keep their elements as-is
	arr := []interface{}{}
	for dec.More() {
		v, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return arr, nil
}

func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r.Fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
