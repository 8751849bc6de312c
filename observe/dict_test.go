package observe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/weftworks/loom/observe"
)

func newDict(t *testing.T, m map[string]any) (*observe.Dict, *int) {
	t.Helper()
	fired := 0
	d := observe.NewRegistry().Wrap(m, func() { fired++ }).(*observe.Dict)
	return d, &fired
}

// should notify on writes and deletes, not on reads
func TestDictMutation(t *testing.T) {
	d, fired := newDict(t, map[string]any{"a": 1})

	assert.Equal(t, 1, d.Get("a"))
	assert.True(t, d.Has("a"))
	assert.Equal(t, 0, *fired)

	d.Set("b", 2)
	assert.Equal(t, 1, *fired)
	assert.Equal(t, 2, d.Len())

	d.Set("a", 10)
	assert.Equal(t, 2, *fired)

	d.Delete("a")
	assert.Equal(t, 3, *fired)
	assert.False(t, d.Has("a"))
}

// should skip notification for identical re-writes and absent deletes
func TestDictNoOps(t *testing.T) {
	d, fired := newDict(t, map[string]any{"a": 1})

	d.Set("a", 1)
	d.Delete("missing")
	assert.Equal(t, 0, *fired)
}

// should distinguish a stored nil from an absent key
func TestDictLookup(t *testing.T) {
	d, _ := newDict(t, map[string]any{})
	d.Set("present", nil)

	v, ok := d.Lookup("present")
	assert.Nil(t, v)
	assert.True(t, ok)

	_, ok = d.Lookup("absent")
	assert.False(t, ok)
	assert.Nil(t, d.Get("absent"))
}

// should iterate keys deterministically
func TestDictKeys(t *testing.T) {
	d, _ := newDict(t, map[string]any{"c": 3, "a": 1, "b": 2})

	assert.Equal(t, []string{"a", "b", "c"}, d.Keys())

	var visited []string
	d.Each(func(k string, v any) { visited = append(visited, k) })
	assert.Equal(t, []string{"a", "b", "c"}, visited)
}

// should share storage with the raw map it wrapped
func TestDictSharesStorage(t *testing.T) {
	raw := map[string]any{"a": 1}
	d, _ := newDict(t, raw)

	d.Set("b", 2)
	assert.Equal(t, 2, raw["b"])
}

// should propagate nested container mutation to the dict's callback
func TestDictNestedMutation(t *testing.T) {
	d, fired := newDict(t, map[string]any{
		"items": []any{1, 2},
	})

	items := d.Get("items").(*observe.List)
	assert.Equal(t, 0, *fired)

	items.Push(3)
	assert.Equal(t, 1, *fired)
	assert.Same(t, items, d.Get("items"))
}
