package unifi

import (
	"context"
	"net/http"
	"strconv"

	"github.com/cockroachdb/errors"

	"github.com/isminet/isminet/models"
)

// GetNetworkConfig retrieves one wired network configuration by identifier.
func (c *APIClient) GetNetworkConfig(ctx context.Context, networkID string) (*models.NetworkConfiguration, error) {
	return one[models.NetworkConfiguration](ctx, c, http.MethodGet,
		c.site("rest/networkconf/"+networkID), nil, "failed to get network configuration")
}

// UpdateNetworkConfig replaces a wired network configuration. The
// configuration is validated locally before anything is sent.
func (c *APIClient) UpdateNetworkConfig(ctx context.Context, networkID string, cfg *models.NetworkConfiguration) (*models.NetworkConfiguration, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "failed to update network configuration")
	}
	return one[models.NetworkConfiguration](ctx, c, http.MethodPut,
		c.site("rest/networkconf/"+networkID), cfg, "failed to update network configuration")
}

// GetVLANConfig retrieves one VLAN configuration by VLAN id.
func (c *APIClient) GetVLANConfig(ctx context.Context, vlanID int) (*models.VLANConfiguration, error) {
	if vlanID < 1 || vlanID > 4094 {
		return nil, errors.Wrap(
			&models.ValidationError{Field: "vlan_id", Reason: "out of range"},
			"failed to get VLAN configuration")
	}
	return one[models.VLANConfiguration](ctx, c, http.MethodGet,
		c.site("rest/vlanconf/"+strconv.Itoa(vlanID)), nil, "failed to get VLAN configuration")
}

// GetDHCPConfig retrieves the DHCP configuration of a network.
func (c *APIClient) GetDHCPConfig(ctx context.Context, networkID string) (*models.DHCPConfiguration, error) {
	return one[models.DHCPConfiguration](ctx, c, http.MethodGet,
		c.site("rest/dhcpconf/"+networkID), nil, "failed to get DHCP configuration")
}
