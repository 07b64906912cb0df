package cache

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLRU_EvictsLeastRecentlyUsed(t *testing.T) {
	c := NewLRU[string, int](2)
	var evicted []string
	c.OnEvict(func(k string, _ int) { evicted = append(evicted, k) })

	c.Set("a", 1)
	c.Set("b", 2)
	c.Get("a")
	c.Set("c", 3)

	_, ok := c.Get("b")
	assert.False(t, ok)
	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, []string{"b"}, evicted)
}

func TestLRU_UpdateKeepsSingleEntry(t *testing.T) {
	c := NewLRU[string, int](2)
	c.Set("a", 1)
	c.Set("a", 100)

	v, _ := c.Get("a")
	assert.Equal(t, 100, v)
	assert.Equal(t, 1, c.Len())
}

func TestLRU_ZeroCapacityStoresNothing(t *testing.T) {
	c := NewLRU[string, int](0)
	c.Set("a", 1)
	assert.Zero(t, c.Len())

	c = NewLRU[string, int](-3)
	assert.Zero(t, c.Capacity())
}

func TestLRU_SetCapacityShrinks(t *testing.T) {
	c := NewLRU[int, int](5)
	for i := range 5 {
		c.Set(i, i)
	}
	c.SetCapacity(2)

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 2, c.Capacity())
	_, ok := c.Get(4)
	assert.True(t, ok)
	_, ok = c.Get(0)
	assert.False(t, ok)

	c.SetCapacity(0)
	assert.Zero(t, c.Len())
}

func TestLRU_TakeAndRemove(t *testing.T) {
	c := NewLRU[string, int](3)
	c.Set("a", 1)
	c.Set("b", 2)

	v, ok := c.Take("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)
	_, ok = c.Take("a")
	assert.False(t, ok)

	c.Remove("b")
	c.Remove("missing")
	assert.Zero(t, c.Len())

	c.Set("x", 1)
	c.Clear()
	assert.Zero(t, c.Len())
}

func TestLRU_ConcurrentAccess(t *testing.T) {
	c := NewLRU[int, int](100)
	var wg sync.WaitGroup

	for i := range 100 {
		wg.Add(3)
		go func() {
			defer wg.Done()
			c.Set(i, i*10)
		}()
		go func() {
			defer wg.Done()
			c.Get(i)
		}()
		go func() {
			defer wg.Done()
			if i%10 == 0 {
				c.SetCapacity(50 + i%7)
			}
		}()
	}
	wg.Wait()

	require.LessOrEqual(t, c.Len(), c.Capacity())
}
