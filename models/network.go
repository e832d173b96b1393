package models

// DHCPConfiguration is the DHCP service definition of a network.
type DHCPConfiguration struct {
	Mode    DHCPMode `json:"mode"`
	Enabled bool     `json:"enabled"`

	Start     string   `json:"start,omitempty"`
	End       string   `json:"end,omitempty"`
	LeaseTime *int     `json:"lease_time,omitempty"`
	DNS       []string `json:"dns,omitempty"`
	GatewayIP string   `json:"gateway_ip,omitempty"`
	NTPServer string   `json:"ntp_server,omitempty"`
	Domain    string   `json:"domain_name,omitempty"`
}

func (d *DHCPConfiguration) Validate() error {
	if !d.Mode.valid() {
		return fieldErr("mode", "unknown DHCP mode")
	}
	if d.Mode == DHCPServer && d.Enabled && (d.Start == "" || d.End == "") {
		return fieldErr("start", "range start and end required when server mode is enabled")
	}
	return firstErr(
		validateIP("start", d.Start),
		validateIP("end", d.End),
		inRangePtr("lease_time", d.LeaseTime, 300, 2592000),
		validateIPv4List("dns", d.DNS),
		validateIP("gateway_ip", d.GatewayIP),
		validateIP("ntp_server", d.NTPServer),
	)
}

// VLANConfiguration is one VLAN of a network.
type VLANConfiguration struct {
	NetworkInfo

	VLANID  int    `json:"vlan_id"`
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
	Subnet  string `json:"subnet"`

	DHCP          *DHCPConfiguration `json:"dhcp,omitempty"`
	IGMPSnooping  *bool              `json:"igmp_snooping,omitempty"`
	IGMPMode      *IGMPMode          `json:"igmp_mode,omitempty"`
	MulticastDNS  *bool              `json:"multicast_dns,omitempty"`
	TaggedPorts   []int              `json:"tagged_ports,omitempty"`
	UntaggedPorts []int              `json:"untagged_ports,omitempty"`
}

func (v *VLANConfiguration) Validate() error {
	if err := inRange("vlan_id", v.VLANID, 1, 4094); err != nil {
		return err
	}
	if err := requireString("name", v.Name); err != nil {
		return err
	}
	if err := requireString("subnet", v.Subnet); err != nil {
		return err
	}
	if err := validateIP("subnet", v.Subnet); err != nil {
		return err
	}
	if v.DHCP != nil {
		if err := v.DHCP.Validate(); err != nil {
			return err
		}
	}
	if v.IGMPMode != nil && !v.IGMPMode.valid() {
		return fieldErr("igmp_mode", "unknown IGMP mode")
	}
	// A port may be tagged or untagged on this VLAN, not both.
	if len(v.TaggedPorts) > 0 && len(v.UntaggedPorts) > 0 {
		tagged := make(map[int]struct{}, len(v.TaggedPorts))
		for _, p := range v.TaggedPorts {
			tagged[p] = struct{}{}
		}
		for _, p := range v.UntaggedPorts {
			if _, ok := tagged[p]; ok {
				return fieldErr("untagged_ports", "port cannot be both tagged and untagged")
			}
		}
	}
	return v.NetworkInfo.validate()
}

// NetworkConfiguration is a wired network definition.
type NetworkConfiguration struct {
	Name        string `json:"name"`
	Purpose     string `json:"purpose"`
	Enabled     bool   `json:"enabled"`
	Subnet      string `json:"subnet"`
	VLANEnabled bool   `json:"vlan_enabled"`

	VLANs []VLANConfiguration `json:"vlans,omitempty"`
	DHCP  *DHCPConfiguration  `json:"dhcp,omitempty"`

	IGMPSnooping  *bool     `json:"igmp_snooping,omitempty"`
	IGMPMode      *IGMPMode `json:"igmp_mode,omitempty"`
	MulticastDNS  *bool     `json:"multicast_dns,omitempty"`
	IPv6RAEnabled *bool     `json:"ipv6_ra_enabled,omitempty"`
}

func (n *NetworkConfiguration) Validate() error {
	if err := requireString("name", n.Name); err != nil {
		return err
	}
	switch n.Purpose {
	case "corporate", "guest", "iot":
	default:
		return fieldErr("purpose", "must be corporate, guest, or iot")
	}
	if err := requireString("subnet", n.Subnet); err != nil {
		return err
	}
	if err := validateIP("subnet", n.Subnet); err != nil {
		return err
	}
	if n.VLANEnabled && len(n.VLANs) == 0 {
		return fieldErr("vlans", "required when vlan_enabled is set")
	}
	seen := make(map[int]struct{}, len(n.VLANs))
	for i := range n.VLANs {
		if err := n.VLANs[i].Validate(); err != nil {
			return err
		}
		id := n.VLANs[i].VLANID
		if _, dup := seen[id]; dup {
			return fieldErr("vlans", "duplicate VLAN id")
		}
		seen[id] = struct{}{}
	}
	if n.DHCP != nil {
		if err := n.DHCP.Validate(); err != nil {
			return err
		}
	}
	if n.IGMPMode != nil && !n.IGMPMode.valid() {
		return fieldErr("igmp_mode", "unknown IGMP mode")
	}
	return nil
}
