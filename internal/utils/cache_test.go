package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCacheSetGet(t *testing.T) {
	c := NewCache(10)

	c.Set("key", "value", time.Minute)
	assert.Equal(t, "value", c.Get("key"))
	assert.Nil(t, c.Get("missing"))
}

func TestCacheExpiry(t *testing.T) {
	c := NewCache(10)

	c.Set("key", "value", 20*time.Millisecond)
	assert.Equal(t, "value", c.Get("key"))

	time.Sleep(30 * time.Millisecond)
	assert.Nil(t, c.Get("key"))
}

func TestCacheDelete(t *testing.T) {
	c := NewCache(10)

	c.Set("key", "value", time.Minute)
	c.Delete("key")
	assert.Nil(t, c.Get("key"))
}

func TestCacheOverwrite(t *testing.T) {
	c := NewCache(10)

	c.Set("key", "old", time.Minute)
	c.Set("key", "new", time.Minute)
	assert.Equal(t, "new", c.Get("key"))
}
