// Package patch models tri-state JSON update fields: a key that is
// absent leaves the column unchanged, an explicit null clears it, and a
// value sets it. Pointer-typed request fields cannot tell the first two
// apart, which matters for reveal/teaser/publication dates where null
// is a meaningful write.
package patch

import "encoding/json"

type Field[T any] struct {
	// Present is true when the key appeared in the request body at all.
	Present bool
	// Value is nil for an explicit null.
	Value *T
}

func (f *Field[T]) UnmarshalJSON(b []byte) error {
	f.Present = true
	if string(b) == "null" {
		f.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	f.Value = &v
	return nil
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if f.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*f.Value)
}
