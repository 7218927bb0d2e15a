// Package drivefolder manages the lifecycle of files inside a single
// Google Drive folder on behalf of automated pipelines: listing,
// uploading, and bulk-removing files by name prefix, with pagination
// and idempotent cleanup semantics.
package drivefolder

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"google.golang.org/api/drive/v3"
)

// Manager enumerates and mutates the contents of a scoped folder. A
// Manager holds no state besides its configuration; all file state is
// remote. A single Manager is not safe for unsynchronized concurrent
// bulk operations against the same folder: two concurrent cleanups may
// both observe a record before either deletes it, in which case the
// loser records a benign not-found failure in its report.
type Manager struct {
	gw       Gateway
	pageSize int64
	maxPages int
	log      zerolog.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithPageSize sets the page size requested per gateway List call.
func WithPageSize(n int64) Option {
	return func(m *Manager) { m.pageSize = n }
}

// WithMaxPageFetches bounds the List calls a single enumeration may
// issue before failing with ErrExhaustedRetries.
func WithMaxPageFetches(n int) Option {
	return func(m *Manager) { m.maxPages = n }
}

// WithLogger attaches a logger. The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(m *Manager) { m.log = log }
}

// New creates a Manager on the given gateway.
func New(gw Gateway, opts ...Option) *Manager {
	m := &Manager{
		gw:       gw,
		pageSize: defaultPageSize,
		maxPages: defaultMaxPageFetches,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// NewFromService creates a Manager directly on an authenticated
// drive.Service.
func NewFromService(service *drive.Service, opts ...Option) *Manager {
	return New(NewDriveGateway(service), opts...)
}

func (m *Manager) pager(scope Scope, filter Filter, includeTrashed bool) *pager {
	return &pager{
		gw:       m.gw,
		query:    buildQuery(scope, filter, includeTrashed),
		pageSize: m.pageSize,
		maxPages: m.maxPages,
	}
}

// ListFiles returns up to limit non-trashed records in the scoped
// folder matching the filter, in the order the service returns them.
// A limit of 0 or less returns everything. NamePrefix is true prefix
// matching: the server-side contains clause fetches a superset, which
// is narrowed client-side, so listing and bulk removal agree on what a
// prefix matches.
func (m *Manager) ListFiles(ctx context.Context, scope Scope, filter Filter, limit int) (records []FileRecord, err error) {
	for rec, err := range m.pager(scope, filter, false).records(ctx) {
		if err != nil {
			return nil, fmt.Errorf("failed to list folder '%s': %w", scope.FolderID, err)
		}
		if !matchesPrefix(rec, filter) {
			continue
		}
		records = append(records, rec)
		if limit > 0 && len(records) == limit {
			break
		}
	}
	return records, nil
}

// ListTrashed returns records in the scoped folder including trashed
// ones, matching the filter with the same prefix semantics as
// ListFiles.
func (m *Manager) ListTrashed(ctx context.Context, scope Scope, filter Filter) (records []FileRecord, err error) {
	for rec, err := range m.pager(scope, filter, true).records(ctx) {
		if err != nil {
			return nil, fmt.Errorf("failed to list folder '%s': %w", scope.FolderID, err)
		}
		if !matchesPrefix(rec, filter) {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// matchesPrefix narrows the server-side contains matches to true
// prefixes. ExactName listings are compared by the caller.
func matchesPrefix(rec FileRecord, filter Filter) bool {
	if filter.ExactName != "" || filter.NamePrefix == "" {
		return true
	}
	return strings.HasPrefix(rec.Name, filter.NamePrefix)
}

// FileExists reports whether a file with exactly the given name exists
// in the scoped folder. The listing uses a dedicated exact-name clause,
// and names are compared client-side as well: server-side name filters
// are superset-only, so 'report.csv' must not match 'report.csv.bak'.
func (m *Manager) FileExists(ctx context.Context, name string, scope Scope) (bool, error) {
	records, err := m.ListFiles(ctx, scope, Filter{ExactName: name}, 0)
	if err != nil {
		return false, fmt.Errorf("failed to check existence of '%s': %w", name, err)
	}
	for _, rec := range records {
		if rec.Name == name {
			return true, nil
		}
	}
	return false, nil
}

// DeleteByID permanently deletes one file. The returned error wraps
// ErrNotFound when the id does not exist, ErrRateLimited or
// ErrTransient when the caller may retry, and ErrPermanent otherwise.
func (m *Manager) DeleteByID(ctx context.Context, id string) error {
	if err := m.gw.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete file '%s': %w", id, err)
	}
	m.log.Debug().Str("id", id).Msg("deleted file")
	return nil
}

// DeleteByPrefix permanently deletes every non-trashed file in the
// scoped folder whose name starts with prefix, and reports the outcome
// per item. An empty prefix matches everything in scope.
//
// A failing item never aborts the operation: the failure is recorded
// and processing continues with the next item. Only an enumeration
// failure returns an error, with no report, since a broken enumeration
// cannot be trusted to represent all matching items. Re-running is
// idempotent: already-deleted files no longer match the enumeration.
func (m *Manager) DeleteByPrefix(ctx context.Context, scope Scope, prefix string) (*Report, error) {
	return m.bulkMutate(ctx, scope, prefix, "delete", func(ctx context.Context, rec FileRecord) error {
		return m.gw.Delete(ctx, rec.ID)
	})
}

// TrashByPrefix is the reversible variant of DeleteByPrefix: matching
// files are moved to the trash instead of permanently deleted.
func (m *Manager) TrashByPrefix(ctx context.Context, scope Scope, prefix string) (*Report, error) {
	return m.bulkMutate(ctx, scope, prefix, "trash", func(ctx context.Context, rec FileRecord) error {
		_, err := m.gw.Update(ctx, rec.ID, Patch{Trashed: true})
		return err
	})
}

// ClearFolder permanently deletes every non-trashed file in the scoped
// folder. Equivalent to DeleteByPrefix with an empty prefix.
func (m *Manager) ClearFolder(ctx context.Context, scope Scope) (*Report, error) {
	return m.DeleteByPrefix(ctx, scope, "")
}

// bulkMutate enumerates matching records first, then applies mutate to
// each sequentially. Sequential round-trips respect per-account rate
// limits and keep report construction race-free. Cancellation between
// items returns the report accumulated so far rather than an error, so
// partial progress stays observable.
func (m *Manager) bulkMutate(ctx context.Context, scope Scope, prefix string, op string, mutate func(context.Context, FileRecord) error) (*Report, error) {
	filter := Filter{NamePrefix: prefix}
	records, err := m.ListFiles(ctx, scope, filter, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate folder '%s': %w", scope.FolderID, err)
	}

	// The enumeration is already narrowed to true prefix matches, so
	// every record here is attempted exactly once.
	report := &Report{}
	for _, rec := range records {
		if ctx.Err() != nil {
			m.log.Warn().
				Str("op", op).
				Int("processed", report.Len()).
				Int("remaining", len(records)-report.Len()).
				Msg("bulk operation cancelled, returning partial report")
			return report, nil
		}
		if err := mutate(ctx, rec); err != nil {
			m.log.Warn().
				Str("op", op).
				Str("id", rec.ID).
				Str("name", rec.Name).
				Err(err).
				Msg("bulk item failed")
			report.Failed = append(report.Failed, FailedItem{
				ID:     rec.ID,
				Name:   rec.Name,
				Reason: err.Error(),
			})
			continue
		}
		m.log.Debug().
			Str("op", op).
			Str("id", rec.ID).
			Str("name", rec.Name).
			Msg("bulk item succeeded")
		report.SucceededIDs = append(report.SucceededIDs, rec.ID)
	}
	m.log.Info().
		Str("op", op).
		Str("folder", scope.FolderID).
		Str("prefix", prefix).
		Int("succeeded", len(report.SucceededIDs)).
		Int("failed", len(report.Failed)).
		Msg("bulk operation complete")
	return report, nil
}
