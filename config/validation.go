package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate checks the configuration using struct tags.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return formatValidationError(err)
	}
	return nil
}

func formatValidationError(err error) error {
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return err
	}
	for _, fe := range vErrs {
		switch fe.Tag() {
		case "required":
			return fmt.Errorf("config: %s is required (set %s)", fe.Field(), envHint(fe.Field()))
		default:
			return fmt.Errorf("config: %s failed validation rule %q (value %v)", fe.Field(), fe.Tag(), fe.Value())
		}
	}
	return err
}

func envHint(field string) string {
	switch field {
	case "FolderID":
		return "OUTPUT_FOLDER_ID"
	case "CredentialsFile":
		return "GDRIVE_CREDENTIALS_FILE"
	default:
		return field
	}
}
