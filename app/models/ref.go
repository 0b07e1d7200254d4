package models

import "encoding/json"

// Ref is a reference that the backend may return either as a bare ID string
// or as the populated object. It decodes both shapes so business logic never
// has to branch on the wire representation.
type Ref[T any] struct {
	ID       string
	Resolved *T
}

// RefID builds an unresolved reference.
func RefID[T any](id string) Ref[T] {
	return Ref[T]{ID: id}
}

// Resolve returns the populated object, consulting lookup when the reference
// only carries an ID. The second return is false when nothing matches.
func (r Ref[T]) Resolve(lookup map[string]*T) (*T, bool) {
	if r.Resolved != nil {
		return r.Resolved, true
	}
	if lookup != nil {
		if v, ok := lookup[r.ID]; ok {
			return v, true
		}
	}
	return nil, false
}

// IsZero reports whether the reference points at nothing.
func (r Ref[T]) IsZero() bool {
	return r.ID == "" && r.Resolved == nil
}

func (r *Ref[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*r = Ref[T]{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &r.ID)
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	r.Resolved = &v
	// keep the ID populated when the object carries one
	var idHolder struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(data, &idHolder); err == nil {
		r.ID = idHolder.ID
	}
	return nil
}

func (r Ref[T]) MarshalJSON() ([]byte, error) {
	if r.Resolved != nil {
		return json.Marshal(r.Resolved)
	}
	return json.Marshal(r.ID)
}
