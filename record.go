package drivefolder

import (
	"time"

	"google.golang.org/api/drive/v3"
)

const (
	mimeTypeGoogleAppFolder = "application/vnd.google-apps.folder"
)

// FileRecord is a read-only snapshot of a remote file. Records are owned
// by the remote service and fetched per call; nothing is cached locally.
type FileRecord struct {
	ID       string
	Name     string
	MimeType string
	Size     int64
	Trashed  bool
	ModTime  time.Time
}

func (r FileRecord) IsFolder() bool {
	return r.MimeType == mimeTypeGoogleAppFolder
}

func newFileRecord(f *drive.File) FileRecord {
	modTime, _ := time.Parse(time.RFC3339, f.ModifiedTime)
	return FileRecord{
		ID:       f.Id,
		Name:     f.Name,
		MimeType: f.MimeType,
		Size:     f.Size,
		Trashed:  f.Trashed,
		ModTime:  modTime,
	}
}

// Scope identifies the folder all listing and mutation operations are
// constrained to.
type Scope struct {
	FolderID string
}

// Filter narrows a listing within a Scope. Fields combine conjunctively
// with the scope clause. NamePrefix is true prefix matching: the query
// carries a server-side contains clause, which matches a superset, and
// results are narrowed client-side. ExactName takes precedence over
// NamePrefix when both are set; exact listings are compared by the
// caller. Server-side name filters are superset-only either way.
type Filter struct {
	NamePrefix string
	ExactName  string
}
