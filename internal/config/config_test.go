package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvAsStringDefault(t *testing.T) {
	assert.Equal(t, "fallback", GetEnvAsString("COVIDHELP_TEST_UNSET", "fallback"))

	t.Setenv("COVIDHELP_TEST_SET", "value")
	assert.Equal(t, "value", GetEnvAsString("COVIDHELP_TEST_SET", "fallback"))
}

func TestGetEnvAsInt(t *testing.T) {
	t.Setenv("COVIDHELP_TEST_INT", "42")
	assert.Equal(t, 42, GetEnvAsInt("COVIDHELP_TEST_INT", 7))

	t.Setenv("COVIDHELP_TEST_INT", "not-a-number")
	assert.Equal(t, 7, GetEnvAsInt("COVIDHELP_TEST_INT", 7))
}

func TestGetEnvAsDuration(t *testing.T) {
	t.Setenv("COVIDHELP_TEST_DUR", "90s")
	assert.Equal(t, 90*time.Second, GetEnvAsDuration("COVIDHELP_TEST_DUR", time.Minute))

	t.Setenv("COVIDHELP_TEST_DUR", "soon")
	assert.Equal(t, time.Minute, GetEnvAsDuration("COVIDHELP_TEST_DUR", time.Minute))
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	assert.Equal(t, ":3000", cfg.ListenAddr)
	assert.Equal(t, "covidDB", cfg.MongoDatabase)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
}
