package drivefoldermust_test

import (
	"context"
	"io"
	"testing"

	drivefolder "github.com/okineko/go-drivefolder"
	"github.com/okineko/go-drivefolder/drivefoldermust"
	"github.com/okineko/go-drivefolder/errors"
)

// stubGateway serves one fixed page and fails every mutation.
type stubGateway struct {
	listErr error
	records []drivefolder.FileRecord
}

func (g *stubGateway) List(ctx context.Context, query, pageToken string, pageSize int64) (drivefolder.Page, error) {
	if g.listErr != nil {
		return drivefolder.Page{}, g.listErr
	}
	return drivefolder.Page{Records: g.records}, nil
}

func (g *stubGateway) Create(ctx context.Context, req drivefolder.CreateRequest, content io.Reader) (drivefolder.FileRecord, error) {
	return drivefolder.FileRecord{}, errors.New(errors.ErrPermanent, "create failed", nil)
}

func (g *stubGateway) Update(ctx context.Context, id string, patch drivefolder.Patch) (drivefolder.FileRecord, error) {
	return drivefolder.FileRecord{}, errors.New(errors.ErrPermanent, "update failed", nil)
}

func (g *stubGateway) Delete(ctx context.Context, id string) error {
	return errors.New(errors.ErrPermanent, "delete failed", nil)
}

func TestManager_PanicsOnEnumerationFailure(t *testing.T) {
	m := drivefoldermust.New(&stubGateway{
		listErr: errors.New(errors.ErrUnauthorized, "token expired", nil),
	})

	defer func() {
		if recover() == nil {
			t.Fatal("ListFiles did not panic on enumeration failure")
		}
	}()
	m.ListFiles(context.Background(), drivefolder.Scope{FolderID: "f"}, drivefolder.Filter{}, 0)
}

func TestManager_BulkFailuresStayInReport(t *testing.T) {
	m := drivefoldermust.New(&stubGateway{
		records: []drivefolder.FileRecord{{ID: "1", Name: "test_1.txt"}},
	})

	report := m.DeleteByPrefix(context.Background(), drivefolder.Scope{FolderID: "f"}, "test_")

	if len(report.Failed) != 1 {
		t.Fatalf("Failed = %v, want 1 entry", report.Failed)
	}
	if len(report.SucceededIDs) != 0 {
		t.Fatalf("SucceededIDs = %v, want empty", report.SucceededIDs)
	}
}
