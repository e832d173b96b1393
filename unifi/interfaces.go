package unifi

import (
	"context"

	"github.com/isminet/isminet/models"
)

// Client defines the interface for UniFi Network controller operations.
// It mirrors APIClient so consumers can substitute mock implementations in
// tests.
//
//nolint:interfacebloat // mirrors the full API client on purpose
type Client interface {
	// Device operations

	// ListDevices retrieves all devices of the site.
	ListDevices(ctx context.Context) ([]models.Device, error)

	// GetDevice retrieves one device by MAC address.
	GetDevice(ctx context.Context, mac string) (*models.Device, error)

	// UpdateDevice applies a partial settings update to a device.
	UpdateDevice(ctx context.Context, mac string, update map[string]any) (*models.Device, error)

	// RestartDevice asks the device manager to restart a device.
	RestartDevice(ctx context.Context, mac string) error

	// Station operations

	// ListClients retrieves all stations known to the site.
	ListClients(ctx context.Context) ([]models.Client, error)

	// GetClient retrieves one station by MAC address.
	GetClient(ctx context.Context, mac string) (*models.Client, error)

	// Wireless operations

	// GetWLANConfig retrieves the wireless configuration keyed by device MAC.
	GetWLANConfig(ctx context.Context, deviceMAC string) (*models.WLANConfiguration, error)

	// UpdateWLANConfig replaces the wireless configuration keyed by device MAC.
	UpdateWLANConfig(ctx context.Context, deviceMAC string, cfg *models.WLANConfiguration) (*models.WLANConfiguration, error)

	// ListNetworkProfiles retrieves all wireless network profiles.
	ListNetworkProfiles(ctx context.Context) ([]models.NetworkProfile, error)

	// GetNetworkProfile retrieves one wireless network profile by identifier.
	GetNetworkProfile(ctx context.Context, profileID string) (*models.NetworkProfile, error)

	// Network operations

	// GetNetworkConfig retrieves one wired network configuration.
	GetNetworkConfig(ctx context.Context, networkID string) (*models.NetworkConfiguration, error)

	// UpdateNetworkConfig replaces a wired network configuration.
	UpdateNetworkConfig(ctx context.Context, networkID string, cfg *models.NetworkConfiguration) (*models.NetworkConfiguration, error)

	// GetVLANConfig retrieves one VLAN configuration by VLAN id.
	GetVLANConfig(ctx context.Context, vlanID int) (*models.VLANConfiguration, error)

	// GetDHCPConfig retrieves the DHCP configuration of a network.
	GetDHCPConfig(ctx context.Context, networkID string) (*models.DHCPConfiguration, error)

	// System operations

	// ListHealth retrieves the per-subsystem health reports.
	ListHealth(ctx context.Context) ([]models.SystemHealth, error)

	// ListProcesses retrieves the controller's process table.
	ListProcesses(ctx context.Context) ([]models.ProcessInfo, error)

	// ListServices retrieves the controller's service status table.
	ListServices(ctx context.Context) ([]models.ServiceStatus, error)

	// GetSystemStatus retrieves the aggregate controller status.
	GetSystemStatus(ctx context.Context) (*models.SystemStatus, error)

	// GetVersion retrieves the controller version report.
	GetVersion(ctx context.Context) (*models.VersionInfo, error)

	// Site operations

	// ListSites retrieves every site visible to the authenticated user.
	ListSites(ctx context.Context) ([]models.Site, error)

	// GetSelf retrieves the authenticated user's record within the site.
	GetSelf(ctx context.Context) (*models.Self, error)
}

// APIClient implements Client.
var _ Client = (*APIClient)(nil)
