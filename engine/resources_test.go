package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type gravityResource struct {
	Scale float64
}

func TestResourceStore_AddGet(t *testing.T) {
	rs := NewResourceStore()

	_, ok := GetResource[*gravityResource](rs)
	assert.False(t, ok)

	AddResource(rs, &gravityResource{Scale: 0.5})
	got, ok := GetResource[*gravityResource](rs)
	require.True(t, ok)
	assert.Equal(t, 0.5, got.Scale)

	// Pointer and value types are distinct keys
	_, ok = GetResource[gravityResource](rs)
	assert.False(t, ok)
}

func TestResourceStore_ReplaceAndRemove(t *testing.T) {
	rs := NewResourceStore()
	AddResource(rs, &gravityResource{Scale: 1})
	AddResource(rs, &gravityResource{Scale: 2})

	assert.Equal(t, 1, rs.Len())
	assert.Equal(t, 2.0, MustGetResource[*gravityResource](rs).Scale)

	assert.True(t, RemoveResource[*gravityResource](rs))
	assert.False(t, RemoveResource[*gravityResource](rs))
	assert.Zero(t, rs.Len())
}

func TestMustGetResource_PanicsWhenMissing(t *testing.T) {
	rs := NewResourceStore()
	assert.PanicsWithValue(t, "required resource not found: *engine.gravityResource", func() {
		MustGetResource[*gravityResource](rs)
	})
}
