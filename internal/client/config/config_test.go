package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, DefaultServerURL, cfg.ServerURL)
	assert.Equal(t, DefaultDBPath, cfg.DBPath)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv(EnvServerURL, "https://api.example.com")
	t.Setenv(EnvDBPath, "/tmp/custom.db")

	cfg := Load()

	assert.Equal(t, "https://api.example.com", cfg.ServerURL)
	assert.Equal(t, "/tmp/custom.db", cfg.DBPath)
}
