package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefDecodesBareID(t *testing.T) {
	var s Student
	err := json.Unmarshal([]byte(`{"class_id": "abc-123"}`), &s)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", s.ClassID.ID)
	assert.Nil(t, s.ClassID.Resolved)
}

func TestRefDecodesPopulatedObject(t *testing.T) {
	var s Student
	err := json.Unmarshal([]byte(`{"class_id": {"id": "abc-123", "name": "Terminale S", "group": "lycee"}}`), &s)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", s.ClassID.ID)
	require.NotNil(t, s.ClassID.Resolved)
	assert.Equal(t, "Terminale S", s.ClassID.Resolved.Name)
	assert.Equal(t, GroupLycee, s.ClassID.Resolved.Group)
}

func TestRefResolveFallsBackToLookup(t *testing.T) {
	r := RefID[Class]("c-1")
	lookup := map[string]*Class{"c-1": {ID: "c-1", Name: "CM2"}}

	c, ok := r.Resolve(lookup)
	require.True(t, ok)
	assert.Equal(t, "CM2", c.Name)

	_, ok = r.Resolve(nil)
	assert.False(t, ok)

	resolved := Ref[Class]{ID: "c-2", Resolved: &Class{ID: "c-2", Name: "6eme"}}
	c, ok = resolved.Resolve(nil)
	require.True(t, ok)
	assert.Equal(t, "6eme", c.Name)
}

func TestRefMarshalRoundTrip(t *testing.T) {
	r := RefID[Class]("c-1")
	b, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Equal(t, `"c-1"`, string(b))

	resolved := Ref[Class]{Resolved: &Class{ID: "c-2", Name: "6eme"}}
	b, err = json.Marshal(resolved)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"name":"6eme"`)
}

func TestCustomTimeParsesDateOnly(t *testing.T) {
	var ct CustomTime
	require.NoError(t, ct.UnmarshalJSON([]byte(`"2025-09-01"`)))
	assert.Equal(t, 2025, ct.Year())

	require.NoError(t, ct.UnmarshalJSON([]byte(`null`)))
	assert.True(t, ct.IsZero())
}
