// Package config loads the tool configuration from the environment.
//
// Sources, in order of precedence: process environment variables, a
// local .env file, built-in defaults.
package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds everything the CLI and library wiring need.
type Config struct {
	// FolderID is the Drive folder all operations are scoped to.
	FolderID string `mapstructure:"output_folder_id" validate:"required"`

	// CredentialsFile points at a service-account JSON key. Empty means
	// application default credentials.
	CredentialsFile string `mapstructure:"gdrive_credentials_file"`

	// PageSize is the page size requested per list call.
	PageSize int64 `mapstructure:"page_size" validate:"gt=0,lte=1000"`

	// MaxPageFetches bounds list calls per enumeration.
	MaxPageFetches int `mapstructure:"max_page_fetches" validate:"gt=0"`

	// LogLevel is the minimum level to emit.
	LogLevel string `mapstructure:"log_level" validate:"oneof=trace debug info warn error"`
}

// Load reads configuration from the environment, applying defaults and
// validating the result.
func Load() (*Config, error) {
	// A missing .env file is fine; the environment may be set directly.
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("output_folder_id", "")
	v.SetDefault("gdrive_credentials_file", "")
	v.SetDefault("page_size", 100)
	v.SetDefault("max_page_fetches", 1000)
	v.SetDefault("log_level", "info")
	v.AutomaticEnv()

	// AutomaticEnv alone does not surface env vars through Unmarshal;
	// each key needs an explicit binding.
	for _, key := range []string{
		"output_folder_id",
		"gdrive_credentials_file",
		"page_size",
		"max_page_fetches",
		"log_level",
	} {
		_ = v.BindEnv(key)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
