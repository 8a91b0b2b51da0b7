package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "postgres", cfg.DBType)
	assert.False(t, cfg.DBLogQueries)
	assert.False(t, cfg.IsProduction())
}

func TestLoadBoolKnob(t *testing.T) {
	t.Setenv("DATABASE_LOG_QUERIES", "true")

	cfg := Load()
	assert.True(t, cfg.DBLogQueries)
}

func TestGetenvBool(t *testing.T) {
	t.Setenv("SOME_FLAG", "on")
	assert.True(t, getenvBool("SOME_FLAG", false))

	t.Setenv("SOME_FLAG", "0")
	assert.False(t, getenvBool("SOME_FLAG", true))

	t.Setenv("SOME_FLAG", "not-a-bool")
	assert.True(t, getenvBool("SOME_FLAG", true))

	t.Setenv("SOME_FLAG", "")
	assert.False(t, getenvBool("SOME_FLAG", false))
}
