package cache

import (
	"testing"
	"time"

	"github.com/cubeengine/plugingen/pkg/plugins"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fooDescriptors() []plugins.Descriptor {
	return []plugins.Descriptor{{
		SimpleName:   "Foo",
		Package:      "demo",
		Dependencies: []plugins.Dependency{{ID: "cubeengine_bar", Version: "1.0"}},
	}}
}

// TestNewParseCache tests the NewParseCache constructor
func TestNewParseCache(t *testing.T) {
	t.Run("with nil config", func(t *testing.T) {
		c := NewParseCache(nil)
		require.NotNil(t, c)
		assert.Equal(t, DefaultConfig().MaxEntries, c.config.MaxEntries)
	})

	t.Run("with non-positive size", func(t *testing.T) {
		c := NewParseCache(&Config{MaxEntries: 0})
		assert.Equal(t, 1, c.config.MaxEntries)
	})
}

func TestParseCache_GetSet(t *testing.T) {
	c := NewParseCache(nil)
	content := []byte("@Module class Foo {}")

	_, ok := c.Get("demo/Foo.java", content)
	assert.False(t, ok)

	c.Set("demo/Foo.java", content, fooDescriptors())

	got, ok := c.Get("demo/Foo.java", content)
	require.True(t, ok)
	assert.Equal(t, fooDescriptors(), got)

	_, ok = c.Get("demo/Foo.java", []byte("@Module class Foo { int x; }"))
	assert.False(t, ok, "changed content must miss")

	stats := c.Stats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(2), stats.Misses)
	assert.Equal(t, int64(1), stats.ItemCount)
	assert.InDelta(t, 1.0/3.0, stats.HitRate, 0.0001)
}

func TestParseCache_EmptyResultIsCached(t *testing.T) {
	c := NewParseCache(nil)
	c.Set("demo/Plain.java", []byte("class Plain {}"), nil)

	got, ok := c.Get("demo/Plain.java", []byte("class Plain {}"))
	assert.True(t, ok)
	assert.Nil(t, got)
}

func TestParseCache_ReturnsCopies(t *testing.T) {
	c := NewParseCache(nil)
	content := []byte("x")
	c.Set("demo/Foo.java", content, fooDescriptors())

	first, _ := c.Get("demo/Foo.java", content)
	first[0].Dependencies = append(first[0].Dependencies, plugins.Dependency{ID: plugins.CoreID})
	first[0].Dependencies[0].Version = "mutated"

	second, _ := c.Get("demo/Foo.java", content)
	assert.Equal(t, fooDescriptors(), second)
}

func TestParseCache_Eviction(t *testing.T) {
	c := NewParseCache(&Config{MaxEntries: 2})
	c.Set("a.java", []byte("a"), nil)
	c.Set("b.java", []byte("b"), nil)
	c.Set("c.java", []byte("c"), nil)

	_, ok := c.Get("a.java", []byte("a"))
	assert.False(t, ok, "oldest entry should be evicted")
	_, ok = c.Get("c.java", []byte("c"))
	assert.True(t, ok)
}

func TestParseCache_TTL(t *testing.T) {
	c := NewParseCache(&Config{MaxEntries: 10, TTL: 20 * time.Millisecond})
	c.Set("a.java", []byte("a"), nil)

	assert.Eventually(t, func() bool {
		_, ok := c.Get("a.java", []byte("a"))
		return !ok
	}, time.Second, 10*time.Millisecond)
}

func TestContentHash(t *testing.T) {
	a := ContentHash("a.java", []byte("x"))
	assert.Equal(t, a, ContentHash("a.java", []byte("x")))
	assert.NotEqual(t, a, ContentHash("b.java", []byte("x")))
	assert.NotEqual(t, a, ContentHash("a.java", []byte("y")))
	assert.Contains(t, a, "v1:")
}
