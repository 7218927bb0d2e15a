package drivefolder

import (
	"context"
	"io"

	"google.golang.org/api/drive/v3"

	"github.com/okineko/go-drivefolder/errors"
)

// Page is one page of a remote listing. An empty NextToken means the
// enumeration is exhausted.
type Page struct {
	Records   []FileRecord
	NextToken string
}

// CreateRequest describes a file to create remotely.
type CreateRequest struct {
	Name       string
	ParentIDs  []string
	Properties map[string]string
}

// Patch is the mutable subset of a file applied by Update.
type Patch struct {
	Trashed bool
}

// Gateway is the remote object-storage surface the library drives. All
// errors returned by a Gateway wrap one of the kinds in the errors
// package. Implementations are expected to enforce their own per-call
// timeouts; the library never retries a call itself.
type Gateway interface {
	List(ctx context.Context, query string, pageToken string, pageSize int64) (Page, error)
	Create(ctx context.Context, req CreateRequest, content io.Reader) (FileRecord, error)
	Update(ctx context.Context, id string, patch Patch) (FileRecord, error)
	Delete(ctx context.Context, id string) error
}

const (
	driveFileFields  = "id,name,mimeType,size,trashed,modifiedTime"
	driveFilesFields = "nextPageToken,files(id,name,mimeType,size,trashed,modifiedTime)"
)

// DriveGateway implements Gateway on a Google Drive service.
type DriveGateway struct {
	service *drive.Service
}

var _ Gateway = (*DriveGateway)(nil)

// NewDriveGateway wraps an authenticated drive.Service.
func NewDriveGateway(service *drive.Service) *DriveGateway {
	return &DriveGateway{service: service}
}

func (g *DriveGateway) List(ctx context.Context, query string, pageToken string, pageSize int64) (Page, error) {
	call := g.service.Files.List().
		SupportsAllDrives(true).
		IncludeItemsFromAllDrives(true).
		Q(query).
		Fields(driveFilesFields).
		PageSize(pageSize).
		Context(ctx)
	if pageToken != "" {
		call = call.PageToken(pageToken)
	}
	res, err := call.Do()
	if err != nil {
		return Page{}, errors.Classify("failed to list files", err)
	}
	page := Page{NextToken: res.NextPageToken}
	for _, f := range res.Files {
		page.Records = append(page.Records, newFileRecord(f))
	}
	return page, nil
}

func (g *DriveGateway) Create(ctx context.Context, req CreateRequest, content io.Reader) (FileRecord, error) {
	f, err := g.service.Files.Create(&drive.File{
		Name:          req.Name,
		Parents:       req.ParentIDs,
		AppProperties: req.Properties,
	}).
		SupportsAllDrives(true).
		Fields(driveFileFields).
		Media(content).
		Context(ctx).
		Do()
	if err != nil {
		return FileRecord{}, errors.Classify("failed to create file", err)
	}
	return newFileRecord(f), nil
}

func (g *DriveGateway) Update(ctx context.Context, id string, patch Patch) (FileRecord, error) {
	// ForceSendFields keeps Trashed on the wire when it is false.
	f, err := g.service.Files.Update(id, &drive.File{
		Trashed:         patch.Trashed,
		ForceSendFields: []string{"Trashed"},
	}).
		SupportsAllDrives(true).
		Fields(driveFileFields).
		Context(ctx).
		Do()
	if err != nil {
		return FileRecord{}, errors.Classify("failed to update file", err)
	}
	return newFileRecord(f), nil
}

func (g *DriveGateway) Delete(ctx context.Context, id string) error {
	err := g.service.Files.Delete(id).
		SupportsAllDrives(true).
		Context(ctx).
		Do()
	if err != nil {
		return errors.Classify("failed to delete file", err)
	}
	return nil
}
