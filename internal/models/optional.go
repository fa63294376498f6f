package models

import "encoding/json"

// Optional records whether a JSON key was present in a patch body at all.
// An absent key leaves Set false; an explicit null sets Set with a nil Value.
type Optional[T any] struct {
	Set   bool
	Value *T
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: &v}
}

// Null returns an Optional that was supplied as null.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

// UnmarshalJSON is called for every key present in the body, including null.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

// normalizeString maps an absent or empty string to nil.
func normalizeString(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	v := *s
	return &v
}

// normalizeStrings maps an absent or empty list to nil and copies the rest.
func normalizeStrings(list []string) []string {
	if len(list) == 0 {
		return nil
	}
	out := make([]string, len(list))
	copy(out, list)
	return out
}
