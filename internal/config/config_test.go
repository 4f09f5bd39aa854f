package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstance(t *testing.T) {
	clear1 := setEnv("POKERHAND_CONFIG_FILE", "testdata/config.yaml")
	defer clear1()
	clear2 := setEnv("POKERHAND_LOG_LEVEL", "warn")
	defer clear2()

	a := assert.New(t)
	cfg := Instance()
	a.True(cfg.Log.DisableAccessLogs)
	a.Equal("warn", cfg.Log.Level)

	// ensure that it's only loaded once
	_ = os.Setenv("POKERHAND_LOG_LEVEL", "error")
	// ensure we aren't using a pointer
	cfg.Log.Level = "bad"
	cfg = Instance()
	a.Equal("warn", cfg.Log.Level)
}

func TestDefaults(t *testing.T) {
	clear1 := setEnv("POKERHAND_CONFIG_FILE", "testdata/does-not-exist.yaml")
	defer clear1()

	assert.NoError(t, Load())
	cfg := Instance()
	assert.Equal(t, "", cfg.Log.Level)
	assert.False(t, cfg.Log.DisableAccessLogs)
}

func setEnv(key, val string) func() {
	orig := os.Getenv(key)
	_ = os.Setenv(key, val)
	return func() {
		if orig == "" {
			_ = os.Unsetenv(key)
		} else {
			_ = os.Setenv(key, orig)
		}
	}
}
