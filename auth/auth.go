// Package auth builds authorized Google Drive service handles.
//
// Credential failures surface from API calls as unauthorized errors;
// nothing here retries them.
package auth

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// Config selects the credential source.
type Config struct {
	// CredentialsFile is a service-account JSON key. When empty,
	// application default credentials are used.
	CredentialsFile string

	// Scopes defaults to full Drive access when empty.
	Scopes []string
}

// NewDriveService returns an authenticated drive.Service.
func NewDriveService(ctx context.Context, cfg Config) (*drive.Service, error) {
	scopes := cfg.Scopes
	if len(scopes) == 0 {
		scopes = []string{drive.DriveScope}
	}

	client, err := newHTTPClient(ctx, cfg.CredentialsFile, scopes)
	if err != nil {
		return nil, err
	}

	service, err := drive.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}
	return service, nil
}

func newHTTPClient(ctx context.Context, credentialsFile string, scopes []string) (*http.Client, error) {
	if credentialsFile == "" {
		client, err := google.DefaultClient(ctx, scopes...)
		if err != nil {
			return nil, fmt.Errorf("failed to load application default credentials: %w", err)
		}
		return client, nil
	}

	data, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file '%s': %w", credentialsFile, err)
	}
	jwtConfig, err := google.JWTConfigFromJSON(data, scopes...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse service account key: %w", err)
	}
	return jwtConfig.Client(ctx), nil
}
