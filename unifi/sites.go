package unifi

import (
	"context"
	"net/http"

	"github.com/isminet/isminet/models"
)

// ListSites retrieves every site visible to the authenticated user. This is
// the one account-scoped endpoint; it does not depend on the configured
// site.
func (c *APIClient) ListSites(ctx context.Context) ([]models.Site, error) {
	return list[models.Site](ctx, c, "/api/self/sites", "failed to list sites")
}

// GetSelf retrieves the authenticated user's record within the site.
func (c *APIClient) GetSelf(ctx context.Context) (*models.Self, error) {
	return one[models.Self](ctx, c, http.MethodGet, c.site("self"), nil, "failed to get self")
}
