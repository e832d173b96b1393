package unifi

import (
	"context"
	"net/http"

	"github.com/isminet/isminet/models"
)

// ListHealth retrieves the per-subsystem health reports of the site.
func (c *APIClient) ListHealth(ctx context.Context) ([]models.SystemHealth, error) {
	return list[models.SystemHealth](ctx, c, c.site("stat/health"), "failed to get system health")
}

// ListProcesses retrieves the controller's process table.
func (c *APIClient) ListProcesses(ctx context.Context) ([]models.ProcessInfo, error) {
	return list[models.ProcessInfo](ctx, c, c.site("stat/process"), "failed to list processes")
}

// ListServices retrieves the controller's service status table.
func (c *APIClient) ListServices(ctx context.Context) ([]models.ServiceStatus, error) {
	return list[models.ServiceStatus](ctx, c, c.site("stat/service"), "failed to list services")
}

// GetSystemStatus retrieves the aggregate controller status.
func (c *APIClient) GetSystemStatus(ctx context.Context) (*models.SystemStatus, error) {
	return one[models.SystemStatus](ctx, c, http.MethodGet, c.site("stat/sysinfo"), nil, "failed to get system status")
}

// GetVersion retrieves the controller version report. This is a narrow view
// of the sysinfo endpoint; fields outside the version schema are ignored.
func (c *APIClient) GetVersion(ctx context.Context) (*models.VersionInfo, error) {
	return one[models.VersionInfo](ctx, c, http.MethodGet, c.site("stat/sysinfo"), nil, "failed to get version")
}
