package models

// Site is a named logical grouping of network devices within the controller.
type Site struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Description string `json:"desc"`
	DeviceCount int    `json:"device_count"`

	Role        *string `json:"role,omitempty"`
	NoDelete    *bool   `json:"attr_no_delete,omitempty"`
	AnonymousID *string `json:"anonymous_id,omitempty"`
	ExternalID  *string `json:"external_id,omitempty"`
}

func (s *Site) Validate() error {
	return firstErr(
		requireString("_id", s.ID),
		requireString("name", s.Name),
		requireString("desc", s.Description),
		atLeast("device_count", s.DeviceCount, 0),
	)
}

// Self is the authenticated user's record within a site.
type Self struct {
	Name     string `json:"name"`
	SiteName string `json:"site_name,omitempty"`
	SiteRole string `json:"site_role,omitempty"`
	IsSuper  *bool  `json:"is_super,omitempty"`
	AdminID  string `json:"admin_id,omitempty"`
}

func (s *Self) Validate() error {
	return requireString("name", s.Name)
}

// VersionInfo is the controller version report.
type VersionInfo struct {
	Version string `json:"version"`
	SiteID  string `json:"site_id"`
	Build   string `json:"build,omitempty"`

	UpdateAvailable  *bool  `json:"update_available,omitempty"`
	UpdateDownloaded *bool  `json:"update_downloaded,omitempty"`
	UpdateVersion    string `json:"update_version,omitempty"`
	InternalVersion  string `json:"internal_version,omitempty"`
	HardwareVersion  string `json:"hardware_version,omitempty"`
	APIVersion       string `json:"api_version,omitempty"`
}

func (v *VersionInfo) Validate() error {
	return firstErr(
		requireVersion("version", v.Version),
		requireString("site_id", v.SiteID),
		validateVersion("update_version", v.UpdateVersion),
	)
}
