package drivefolder

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Healthcheck verifies round-trip access to the scoped folder: it
// uploads a uniquely named probe file, confirms the probe is visible,
// then deletes it. The result is a success flag and a human-readable
// message rather than an error, for orchestration layers that map
// health to a process exit code.
func (m *Manager) Healthcheck(ctx context.Context, scope Scope) (ok bool, message string) {
	probe := fmt.Sprintf("healthcheck_%s.txt", uuid.NewString())
	uploader := NewUploader(m.gw)

	rec, err := uploader.Upload(ctx, probe, strings.NewReader("probe"), scope)
	if err != nil {
		return false, fmt.Sprintf("upload probe failed: %v", err)
	}

	exists, err := m.FileExists(ctx, probe, scope)
	if err != nil {
		return false, fmt.Sprintf("probe lookup failed: %v", err)
	}
	if !exists {
		return false, fmt.Sprintf("probe '%s' uploaded but not visible", probe)
	}

	if err := m.DeleteByID(ctx, rec.ID); err != nil {
		return false, fmt.Sprintf("probe cleanup failed: %v", err)
	}
	return true, fmt.Sprintf("folder '%s' is reachable and writable", scope.FolderID)
}
