// Package drivefoldermust wraps the drivefolder package with
// panic-based error handling.
//
// It provides the same folder operations as the root-level drivefolder
// package, but instead of returning errors, all exported methods panic
// on failure. Intended for scripts and one-shot pipeline steps where an
// error is unrecoverable anyway.
package drivefoldermust

import (
	"context"

	drivefolder "github.com/okineko/go-drivefolder"
	"google.golang.org/api/drive/v3"
)

// Manager manages the contents of a scoped Google Drive folder.
//
// All methods of Manager panic on error instead of returning an error
// value.
type Manager struct {
	manager *drivefolder.Manager
}

// New creates a Manager on the given gateway.
func New(gw drivefolder.Gateway, opts ...drivefolder.Option) *Manager {
	return &Manager{manager: drivefolder.New(gw, opts...)}
}

// NewFromService creates a Manager directly on an authenticated
// drive.Service.
func NewFromService(service *drive.Service, opts ...drivefolder.Option) *Manager {
	return &Manager{manager: drivefolder.NewFromService(service, opts...)}
}

// ListFiles returns up to limit matching records in the scoped folder.
// It panics if the enumeration fails.
func (m *Manager) ListFiles(ctx context.Context, scope drivefolder.Scope, filter drivefolder.Filter, limit int) []drivefolder.FileRecord {
	return must1(m.manager.ListFiles(ctx, scope, filter, limit))
}

// FileExists reports whether a file with exactly the given name exists.
// It panics if the lookup fails.
func (m *Manager) FileExists(ctx context.Context, name string, scope drivefolder.Scope) bool {
	return must1(m.manager.FileExists(ctx, name, scope))
}

// DeleteByID permanently deletes one file. It panics on failure.
func (m *Manager) DeleteByID(ctx context.Context, id string) {
	must0(m.manager.DeleteByID(ctx, id))
}

// DeleteByPrefix permanently deletes matching files and returns the
// per-item report. It panics only if the enumeration fails; per-item
// failures stay in the report.
func (m *Manager) DeleteByPrefix(ctx context.Context, scope drivefolder.Scope, prefix string) *drivefolder.Report {
	return must1(m.manager.DeleteByPrefix(ctx, scope, prefix))
}

// TrashByPrefix moves matching files to the trash and returns the
// per-item report. It panics only if the enumeration fails.
func (m *Manager) TrashByPrefix(ctx context.Context, scope drivefolder.Scope, prefix string) *drivefolder.Report {
	return must1(m.manager.TrashByPrefix(ctx, scope, prefix))
}

// ClearFolder permanently deletes everything in the scoped folder and
// returns the per-item report. It panics only if the enumeration fails.
func (m *Manager) ClearFolder(ctx context.Context, scope drivefolder.Scope) *drivefolder.Report {
	return must1(m.manager.ClearFolder(ctx, scope))
}
