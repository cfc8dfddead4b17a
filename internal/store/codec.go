package store

import "encoding/json"

// Encode converts a typed model into its stored record form via its JSON
// tags.
func Encode(v any) (Record, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Decode converts a stored record back into a typed model.
func Decode[T any](rec Record) (*T, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, err
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// DecodeAll converts a whole collection, preserving order.
func DecodeAll[T any](records []Record) ([]T, error) {
	out := make([]T, 0, len(records))
	for _, rec := range records {
		v, err := Decode[T](rec)
		if err != nil {
			return nil, err
		}
		out = append(out, *v)
	}
	return out, nil
}
