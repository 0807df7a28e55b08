package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSetGet(t *testing.T) {
	c := New()

	c.Set("k", "v", time.Minute)
	got, ok := c.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "v", got)

	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestLazyExpiry(t *testing.T) {
	c := New()

	c.Set("k", 42, -time.Millisecond)

	_, ok := c.Get("k")
	assert.False(t, ok)
	// Evicted on read, not just hidden.
	assert.Equal(t, 0, c.Len())
}

func TestDeleteAndClear(t *testing.T) {
	c := New()
	c.Set("a", 1, time.Minute)
	c.Set("b", 2, time.Minute)

	c.Delete("a")
	_, ok := c.Get("a")
	assert.False(t, ok)
	_, ok = c.Get("b")
	assert.True(t, ok)

	c.Clear()
	assert.Equal(t, 0, c.Len())
}

func TestGetAs(t *testing.T) {
	c := New()
	c.Set("nums", []int{1, 2, 3}, time.Minute)

	nums, ok := GetAs[[]int](c, "nums")
	assert.True(t, ok)
	assert.Equal(t, []int{1, 2, 3}, nums)

	// Wrong type is a miss, not a panic.
	_, ok = GetAs[string](c, "nums")
	assert.False(t, ok)
}

func TestInvalidateHoursRelated(t *testing.T) {
	c := New()
	for _, key := range hoursRelatedKeys {
		c.Set(key, "cached", time.Minute)
	}
	c.Set("unrelated", "kept", time.Minute)

	c.InvalidateHoursRelated()

	for _, key := range hoursRelatedKeys {
		_, ok := c.Get(key)
		assert.False(t, ok, key)
	}
	_, ok := c.Get("unrelated")
	assert.True(t, ok)
}
