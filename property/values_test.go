package property

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValues_PutKeepsPosition(t *testing.T) {
	v := NewValues().Put("b", 1).Put("a", 2).Put("b", 3)

	assert.Equal(t, []string{"b", "a"}, v.Keys())
	assert.Equal(t, 2, v.Len())

	got, ok := v.Get("b")
	require.True(t, ok)
	assert.Equal(t, 3, got)

	_, ok = v.Get("c")
	assert.False(t, ok)
}

func TestValues_Map(t *testing.T) {
	v := NewValues().Put("name", "Ann").Put("id", int64(1))

	m := v.Map()
	assert.Equal(t, map[string]any{"name": "Ann", "id": int64(1)}, m)

	m["name"] = "Bob"
	delete(m, "id")

	got, _ := v.Get("name")
	assert.Equal(t, "Ann", got)
	assert.Equal(t, []string{"name", "id"}, v.Keys())
	assert.Len(t, NewValues().Map(), 0)
}
