package unifi

import (
	"context"
	"net/http"

	"github.com/cockroachdb/errors"

	"github.com/isminet/isminet/models"
)

// ListDevices retrieves all devices of the site.
func (c *APIClient) ListDevices(ctx context.Context) ([]models.Device, error) {
	return list[models.Device](ctx, c, c.site("stat/device"), "failed to list devices")
}

// GetDevice retrieves one device by MAC address.
func (c *APIClient) GetDevice(ctx context.Context, mac string) (*models.Device, error) {
	mac, err := models.NormalizeMAC("mac", mac)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get device")
	}
	return one[models.Device](ctx, c, http.MethodGet, c.site("stat/device/"+mac), nil, "failed to get device")
}

// UpdateDevice applies a partial settings update to a device and returns its
// new state. The update is a free-form field map; the controller rejects
// unknown fields.
func (c *APIClient) UpdateDevice(ctx context.Context, mac string, update map[string]any) (*models.Device, error) {
	mac, err := models.NormalizeMAC("mac", mac)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update device")
	}
	return one[models.Device](ctx, c, http.MethodPut, c.site("rest/device/"+mac), update, "failed to update device")
}

// RestartDevice asks the device manager to restart a device.
func (c *APIClient) RestartDevice(ctx context.Context, mac string) error {
	mac, err := models.NormalizeMAC("mac", mac)
	if err != nil {
		return errors.Wrap(err, "failed to restart device")
	}
	reqBody := map[string]string{"mac": mac, "cmd": "restart"}
	return command(ctx, c, http.MethodPost, c.site("cmd/devmgr/restart"), reqBody, "failed to restart device")
}
