package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Run("set variable wins", func(t *testing.T) {
		t.Setenv("APP_NAME", "vestra")
		assert.Equal(t, "vestra", GetEnv("APP_NAME", "fallback"))
	})

	t.Run("empty value falls back to the default", func(t *testing.T) {
		t.Setenv("APP_NAME", "")
		assert.Equal(t, "fallback", GetEnv("APP_NAME", "fallback"))
	})
}

func TestGetIntEnv(t *testing.T) {
	t.Run("parses integers", func(t *testing.T) {
		t.Setenv("POOL_SIZE", "25")
		assert.Equal(t, 25, GetIntEnv("POOL_SIZE", 10))
	})

	t.Run("non-numeric value falls back to the default", func(t *testing.T) {
		t.Setenv("POOL_SIZE", "lots")
		assert.Equal(t, 10, GetIntEnv("POOL_SIZE", 10))
	})
}

func TestIsProduction(t *testing.T) {
	t.Setenv("ENV", "production")
	assert.True(t, IsProduction())

	t.Setenv("ENV", "development")
	assert.False(t, IsProduction())
}
