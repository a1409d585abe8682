package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCacheSetGetDelete(t *testing.T) {
	c := New()

	_, found := c.Get("missing")
	assert.False(t, found)

	c.Set("key", "value", time.Minute)
	got, found := c.Get("key")
	assert.True(t, found)
	assert.Equal(t, "value", got)

	c.Delete("key")
	_, found = c.Get("key")
	assert.False(t, found)
}

func TestCacheSetDefault(t *testing.T) {
	c := New()

	c.SetDefault("key", 42)
	got, found := c.Get("key")
	assert.True(t, found)
	assert.Equal(t, 42, got)
}
