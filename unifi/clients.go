package unifi

import (
	"context"
	"net/http"

	"github.com/cockroachdb/errors"

	"github.com/isminet/isminet/models"
)

// ListClients retrieves all stations known to the site, wired and wireless.
func (c *APIClient) ListClients(ctx context.Context) ([]models.Client, error) {
	return list[models.Client](ctx, c, c.site("stat/sta"), "failed to list clients")
}

// GetClient retrieves one station by MAC address.
func (c *APIClient) GetClient(ctx context.Context, mac string) (*models.Client, error) {
	mac, err := models.NormalizeMAC("mac", mac)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get client")
	}
	return one[models.Client](ctx, c, http.MethodGet, c.site("stat/sta/"+mac), nil, "failed to get client")
}
