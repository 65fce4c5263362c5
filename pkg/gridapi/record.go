package gridapi

import (
	"fmt"

	"github.com/ohler55/ojg/jp"
	"github.com/spf13/cast"
)

// Record is a schemaless API object: the shape of each response is
// decided by the mask the request carried, so results are navigated
// dynamically rather than unmarshaled into fixed structs.
type Record map[string]any

// RecordSet is a list of records, as returned by list functions.
type RecordSet []Record

// AsRecord converts a decoded execution result to a Record.
func AsRecord(v any) (Record, bool) {
	switch rec := v.(type) {
	case Record:
		return rec, true
	case map[string]any:
		return Record(rec), true
	}

	return nil, false
}

// AsRecordSet converts a decoded execution result to a RecordSet. Every
// element must itself be an object.
func AsRecordSet(v any) (RecordSet, bool) {
	switch set := v.(type) {
	case RecordSet:
		return set, true
	case []any:
		records := make(RecordSet, 0, len(set))

		for _, item := range set {
			rec, ok := AsRecord(item)
			if !ok {
				return nil, false
			}

			records = append(records, rec)
		}

		return records, true
	}

	return nil, false
}

// Dig returns the first value matching the JSONPath expression, e.g.
// "operatingSystem.passwords[0].password". Invalid expressions and
// missing values both report false.
func (r Record) Dig(path string) (any, bool) {
	expr, err := jp.ParseString(path)
	if err != nil {
		return nil, false
	}

	results := expr.Get(map[string]any(r))
	if len(results) == 0 {
		return nil, false
	}

	return results[0], true
}

// Query returns all values matching the JSONPath expression.
func (r Record) Query(path string) ([]any, error) {
	expr, err := jp.ParseString(path)
	if err != nil {
		return nil, fmt.Errorf("invalid jsonpath %q: %w", path, err)
	}

	return expr.Get(map[string]any(r)), nil
}

// String returns the value at path as a string, or "" when absent.
func (r Record) String(path string) string {
	value, ok := r.Dig(path)
	if !ok {
		return ""
	}

	return cast.ToString(value)
}

// Int returns the value at path as an int, or 0 when absent.
func (r Record) Int(path string) int {
	value, ok := r.Dig(path)
	if !ok {
		return 0
	}

	return cast.ToInt(value)
}

// Bool returns the value at path as a bool, or false when absent.
func (r Record) Bool(path string) bool {
	value, ok := r.Dig(path)
	if !ok {
		return false
	}

	return cast.ToBool(value)
}

// Float returns the value at path as a float64, or 0 when absent.
func (r Record) Float(path string) float64 {
	value, ok := r.Dig(path)
	if !ok {
		return 0
	}

	return cast.ToFloat64(value)
}
