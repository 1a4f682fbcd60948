package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCacheSetGet(t *testing.T) {
	c := New(time.Minute, time.Minute)

	c.Set("key", "value")
	got, found := c.Get("key")
	assert.True(t, found)
	assert.Equal(t, "value", got)

	_, found = c.Get("missing")
	assert.False(t, found)
}

func TestCacheExpiration(t *testing.T) {
	c := New(10*time.Millisecond, time.Minute)

	c.Set("key", "value")
	time.Sleep(20 * time.Millisecond)

	_, found := c.Get("key")
	assert.False(t, found)
}

func TestCacheDeleteClear(t *testing.T) {
	c := New(time.Minute, time.Minute)

	c.Set("a", 1)
	c.Set("b", 2)
	assert.Equal(t, 2, c.ItemCount())

	c.Delete("a")
	_, found := c.Get("a")
	assert.False(t, found)

	c.Clear()
	assert.Equal(t, 0, c.ItemCount())
}

func TestPlanKey(t *testing.T) {
	key := PlanKey("nextjs", 13, 14.2)
	assert.Equal(t, "plan:nextjs:13:14.2", key)

	// Distinct windows produce distinct keys
	assert.NotEqual(t, PlanKey("nextjs", 13, 14), PlanKey("nextjs", 13, 14.2))
	assert.NotEqual(t, PlanKey("nextjs", 13, 14), PlanKey("angular", 13, 14))
}
