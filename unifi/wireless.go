package unifi

import (
	"context"
	"net/http"

	"github.com/cockroachdb/errors"

	"github.com/isminet/isminet/models"
)

// GetWLANConfig retrieves the wireless configuration keyed by device MAC.
func (c *APIClient) GetWLANConfig(ctx context.Context, deviceMAC string) (*models.WLANConfiguration, error) {
	deviceMAC, err := models.NormalizeMAC("mac", deviceMAC)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get WLAN configuration")
	}
	return one[models.WLANConfiguration](ctx, c, http.MethodGet,
		c.site("rest/wlanconf/"+deviceMAC), nil, "failed to get WLAN configuration")
}

// UpdateWLANConfig replaces the wireless configuration keyed by device MAC.
// The configuration is validated locally before anything is sent.
func (c *APIClient) UpdateWLANConfig(ctx context.Context, deviceMAC string, cfg *models.WLANConfiguration) (*models.WLANConfiguration, error) {
	deviceMAC, err := models.NormalizeMAC("mac", deviceMAC)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update WLAN configuration")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "failed to update WLAN configuration")
	}
	return one[models.WLANConfiguration](ctx, c, http.MethodPut,
		c.site("rest/wlanconf/"+deviceMAC), cfg, "failed to update WLAN configuration")
}

// ListNetworkProfiles retrieves all wireless network (SSID) profiles.
func (c *APIClient) ListNetworkProfiles(ctx context.Context) ([]models.NetworkProfile, error) {
	return list[models.NetworkProfile](ctx, c, c.site("rest/networkconf"), "failed to list network profiles")
}

// GetNetworkProfile retrieves one wireless network profile by identifier.
func (c *APIClient) GetNetworkProfile(ctx context.Context, profileID string) (*models.NetworkProfile, error) {
	return one[models.NetworkProfile](ctx, c, http.MethodGet,
		c.site("rest/networkconf/"+profileID), nil, "failed to get network profile")
}
