package drivefolder

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"
	"sync"

	"github.com/okineko/go-drivefolder/errors"
)

// fakeGateway is an in-memory Gateway. With scripted pages it replays
// them verbatim, recording the tokens it is asked for; otherwise it
// behaves like a live folder, answering List from its file set by
// parsing the clauses buildQuery emits.
type fakeGateway struct {
	mu sync.Mutex

	// scripted mode
	pages []Page

	// live mode
	files   []FileRecord
	nextID  int
	created []CreateRequest

	listErr   error
	createErr error
	deleteErr map[string]error
	updateErr map[string]error

	listCalls  int
	seenTokens []string
	queries    []string
	deleted    []string
}

var _ Gateway = (*fakeGateway)(nil)

var (
	reExact    = regexp.MustCompile(`name = '([^']*)'`)
	reContains = regexp.MustCompile(`name contains '([^']*)'`)
)

func (g *fakeGateway) List(ctx context.Context, query string, pageToken string, pageSize int64) (Page, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.listCalls++
	g.seenTokens = append(g.seenTokens, pageToken)
	g.queries = append(g.queries, query)
	if g.listErr != nil {
		return Page{}, g.listErr
	}
	if g.pages != nil {
		idx := 0
		if pageToken != "" {
			fmt.Sscanf(pageToken, "page-%d", &idx)
		}
		if idx >= len(g.pages) {
			return Page{}, nil
		}
		return g.pages[idx], nil
	}

	includeTrashed := !strings.Contains(query, "trashed = false")
	var page Page
	for _, f := range g.files {
		if f.Trashed && !includeTrashed {
			continue
		}
		if m := reExact.FindStringSubmatch(query); m != nil && f.Name != m[1] {
			continue
		}
		if m := reContains.FindStringSubmatch(query); m != nil && !strings.Contains(f.Name, m[1]) {
			continue
		}
		page.Records = append(page.Records, f)
	}
	return page, nil
}

func (g *fakeGateway) Create(ctx context.Context, req CreateRequest, content io.Reader) (FileRecord, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.createErr != nil {
		return FileRecord{}, g.createErr
	}
	g.created = append(g.created, req)
	g.nextID++
	rec := FileRecord{ID: fmt.Sprintf("id-%d", g.nextID), Name: req.Name}
	g.files = append(g.files, rec)
	return rec, nil
}

func (g *fakeGateway) Update(ctx context.Context, id string, patch Patch) (FileRecord, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.updateErr[id]; err != nil {
		return FileRecord{}, err
	}
	for i, f := range g.files {
		if f.ID == id {
			g.files[i].Trashed = patch.Trashed
			return g.files[i], nil
		}
	}
	return FileRecord{}, errors.New(errors.ErrNotFound, "file not found", nil)
}

func (g *fakeGateway) Delete(ctx context.Context, id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.deleteErr[id]; err != nil {
		return err
	}
	for i, f := range g.files {
		if f.ID == id {
			g.files = append(g.files[:i], g.files[i+1:]...)
			g.deleted = append(g.deleted, id)
			return nil
		}
	}
	return errors.New(errors.ErrNotFound, "file not found", nil)
}
