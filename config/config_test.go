package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("OUTPUT_FOLDER_ID", "folder-abc")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "folder-abc", cfg.FolderID)
	assert.Equal(t, int64(100), cfg.PageSize)
	assert.Equal(t, 1000, cfg.MaxPageFetches)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.CredentialsFile)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("OUTPUT_FOLDER_ID", "folder-abc")
	t.Setenv("PAGE_SIZE", "250")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("GDRIVE_CREDENTIALS_FILE", "/secrets/sa.json")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, int64(250), cfg.PageSize)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/secrets/sa.json", cfg.CredentialsFile)
}

func TestLoad_MissingFolderID(t *testing.T) {
	t.Setenv("OUTPUT_FOLDER_ID", "")

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "OUTPUT_FOLDER_ID")
}

func TestValidate_Rules(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"page size zero", func(c *Config) { c.PageSize = 0 }, true},
		{"page size too large", func(c *Config) { c.PageSize = 5000 }, true},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, true},
		{"max fetches zero", func(c *Config) { c.MaxPageFetches = 0 }, true},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			cfg := &Config{
				FolderID:       "f",
				PageSize:       100,
				MaxPageFetches: 10,
				LogLevel:       "info",
			}
			c.mutate(cfg)
			err := Validate(cfg)
			if c.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
