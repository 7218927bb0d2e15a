package drivefolder

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/okineko/go-drivefolder/errors"
)

// Uploader places local files into a target folder. Producers use it;
// the cleanup core does not, but both share the same gateway.
type Uploader struct {
	gw    Gateway
	props map[string]string
	log   zerolog.Logger
}

// UploadOption configures an Uploader.
type UploadOption func(*Uploader)

// WithProperties tags every uploaded file with the given appProperties,
// so pipeline outputs can be told apart from user files.
func WithProperties(props map[string]string) UploadOption {
	return func(u *Uploader) { u.props = props }
}

// WithUploadLogger attaches a logger. The default discards everything.
func WithUploadLogger(log zerolog.Logger) UploadOption {
	return func(u *Uploader) { u.log = log }
}

// NewUploader creates an Uploader on the given gateway.
func NewUploader(gw Gateway, opts ...UploadOption) *Uploader {
	u := &Uploader{gw: gw, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// UploadFile reads the local file at path and uploads it into the
// scoped folder under its base name.
func (u *Uploader) UploadFile(ctx context.Context, path string, scope Scope) (FileRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FileRecord{}, errors.NewIOError(fmt.Sprintf("failed to read '%s'", path), err)
	}
	return u.Upload(ctx, filepath.Base(path), bytes.NewReader(data), scope)
}

// Upload uploads content into the scoped folder under the given name.
func (u *Uploader) Upload(ctx context.Context, name string, content io.Reader, scope Scope) (FileRecord, error) {
	rec, err := u.gw.Create(ctx, CreateRequest{
		Name:       name,
		ParentIDs:  []string{scope.FolderID},
		Properties: u.props,
	}, content)
	if err != nil {
		return FileRecord{}, fmt.Errorf("failed to upload '%s': %w", name, err)
	}
	u.log.Info().
		Str("id", rec.ID).
		Str("name", rec.Name).
		Str("folder", scope.FolderID).
		Msg("uploaded file")
	return rec, nil
}
