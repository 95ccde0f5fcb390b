package cache

import (
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheBasic(t *testing.T) {
	c := New[string, int](3)
	c.Set("a", 1)
	c.Set("b", 2)

	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = c.Get("z")
	assert.False(t, ok)
	assert.Equal(t, 2, c.Len())
}

func TestCacheEviction(t *testing.T) {
	c := New[string, int](2)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Get("a")
	c.Set("c", 3)

	_, ok := c.Get("b")
	assert.False(t, ok, "least recently used item is evicted")
	_, ok = c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, uint64(1), c.Stats().Evicts)
}

func TestCacheUpdateAndDelete(t *testing.T) {
	c := New[string, int](2)
	c.Set("a", 1)
	c.Set("a", 10)
	v, _ := c.Get("a")
	assert.Equal(t, 10, v)
	assert.Equal(t, 1, c.Len())

	c.Delete("a")
	c.Delete("missing")
	assert.Equal(t, 0, c.Len())

	c.Set("b", 2)
	c.Clear()
	assert.Equal(t, 0, c.Len())
}

func TestCacheGetOrLoad(t *testing.T) {
	c := New[string, int](0)
	calls := 0
	load := func() (int, error) {
		calls++
		return 42, nil
	}

	v, err := c.GetOrLoad("k", load)
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	v, err = c.GetOrLoad("k", load)
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, 1, calls)

	boom := errors.New("boom")
	_, err = c.GetOrLoad("bad", func() (int, error) { return 0, boom })
	assert.ErrorIs(t, err, boom)
	_, ok := c.Get("bad")
	assert.False(t, ok, "failed loads are not cached")
}

func TestCacheStats(t *testing.T) {
	c := New[int, int](4)
	c.Set(1, 1)
	c.Get(1)
	c.Get(1)
	c.Get(2)

	s := c.Stats()
	assert.Equal(t, 1, s.Size)
	assert.Equal(t, 4, s.Capacity)
	assert.Equal(t, uint64(2), s.Hits)
	assert.Equal(t, uint64(1), s.Misses)
	assert.InDelta(t, 2.0/3.0, s.HitRate, 1e-9)
}

func TestCacheConcurrent(t *testing.T) {
	c := New[int, int](16)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				_, _ = c.GetOrLoad(i%32, func() (int, error) { return g, nil })
			}
		}(g)
	}
	wg.Wait()
	assert.LessOrEqual(t, c.Len(), 16)
}
