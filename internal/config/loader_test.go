package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/viant/idgen"
)

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "idgen.yaml")
	content := `generator:
  strategy: striped
  stripes: 4
format: hex
count: 3
shutdown_timeout: 2s
`
	if !assert.Nil(t, os.WriteFile(path, []byte(content), 0o600)) {
		return
	}

	cfg, resolved, err := Load(nil, path)
	assert.Nil(t, err)
	assert.Equal(t, path, resolved)
	assert.Equal(t, idgen.StrategyStriped, cfg.Generator.Strategy)
	assert.Equal(t, 4, cfg.Generator.Stripes)
	assert.Equal(t, "hex", cfg.Format)
	assert.Equal(t, 3, cfg.Count)
	assert.Equal(t, 2*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Nil(t, cfg.Validate())
}

func TestLoad_WritesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "idgen.yaml")
	logger := zerolog.Nop()

	cfg, _, err := Load(&logger, path)
	assert.Nil(t, err)
	assert.Equal(t, Default(), cfg)

	_, statErr := os.Stat(path)
	assert.Nil(t, statErr)

	again, _, err := Load(&logger, path)
	assert.Nil(t, err)
	assert.Equal(t, Default(), again)
}

func TestLoad_EnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "idgen.yaml")
	t.Setenv("IDGEN_GENERATOR_STRATEGY", "simple")
	t.Setenv("IDGEN_COUNT", "7")

	cfg, _, err := Load(nil, path)
	assert.Nil(t, err)
	assert.Equal(t, idgen.StrategySimple, cfg.Generator.Strategy)
	assert.Equal(t, 7, cfg.Count)
}

func TestLoad_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "idgen.yaml")
	assert.Nil(t, os.WriteFile(path, []byte("generator: [unclosed"), 0o600))

	_, _, err := Load(nil, path)
	assert.NotNil(t, err)
}

func TestConfig_Validate(t *testing.T) {
	var testCases = []struct {
		description string
		mutate      func(c *Config)
		expectErr   bool
	}{
		{description: "default", mutate: func(c *Config) {}},
		{description: "bad strategy", mutate: func(c *Config) { c.Generator.Strategy = "nope" }, expectErr: true},
		{description: "bad format", mutate: func(c *Config) { c.Format = "base64" }, expectErr: true},
		{description: "zero count", mutate: func(c *Config) { c.Count = 0 }, expectErr: true},
	}
	for _, testCase := range testCases {
		cfg := Default()
		testCase.mutate(&cfg)
		err := cfg.Validate()
		assert.Equal(t, testCase.expectErr, err != nil, testCase.description)
	}
}
