package models

import "strings"

// PortStats describes one switch port with its counters and configuration.
type PortStats struct {
	Statistics
	NetworkInfo

	PortIdx  int    `json:"port_idx"`
	Name     string `json:"name"`
	Media    string `json:"media,omitempty"`
	PortPoe  bool   `json:"port_poe,omitempty"`
	Speed    int    `json:"speed"`
	Up       bool   `json:"up"`
	IsUplink bool   `json:"is_uplink,omitempty"`
	MAC      string `json:"mac"`
	RxErrors int64  `json:"rx_errors"`
	TxErrors int64  `json:"tx_errors"`
	Type     string `json:"type,omitempty"`
	IP       string `json:"ip,omitempty"`

	PoeMode    *PoEMode `json:"poe_mode,omitempty"`
	PoeEnable  *bool    `json:"poe_enable,omitempty"`
	Autoneg    *bool    `json:"autoneg,omitempty"`
	FullDuplex *bool    `json:"full_duplex,omitempty"`

	StormctrlBcastEnabled *bool `json:"stormctrl_bcast_enabled,omitempty"`
	StormctrlBcastRate    *int  `json:"stormctrl_bcast_rate,omitempty"`
	StormctrlMcastEnabled *bool `json:"stormctrl_mcast_enabled,omitempty"`
	StormctrlMcastRate    *int  `json:"stormctrl_mcast_rate,omitempty"`
	StormctrlUcastEnabled *bool `json:"stormctrl_ucast_enabled,omitempty"`
	StormctrlUcastRate    *int  `json:"stormctrl_ucast_rate,omitempty"`

	PortSecurityEnabled    *bool    `json:"port_security_enabled,omitempty"`
	PortSecurityMACAddress []string `json:"port_security_mac_address,omitempty"`
	Isolation              *bool    `json:"isolation,omitempty"`
}

func (p *PortStats) Validate() error {
	if p.PoeMode != nil && !p.PoeMode.valid() {
		return fieldErr("poe_mode", "unknown PoE mode")
	}
	return firstErr(
		atLeast("port_idx", p.PortIdx, 1),
		requireString("name", p.Name),
		atLeast("speed", p.Speed, 0),
		requireMAC("mac", &p.MAC),
		atLeast("rx_errors", p.RxErrors, 0),
		atLeast("tx_errors", p.TxErrors, 0),
		validateIP("ip", p.IP),
		inRangePtr("stormctrl_bcast_rate", p.StormctrlBcastRate, 0, 100),
		inRangePtr("stormctrl_mcast_rate", p.StormctrlMcastRate, 0, 100),
		inRangePtr("stormctrl_ucast_rate", p.StormctrlUcastRate, 0, 100),
		validateMACList("port_security_mac_address", p.PortSecurityMACAddress),
		p.Statistics.validate(),
		p.NetworkInfo.validate(),
	)
}

// WifiStats describes the wireless association of a client.
type WifiStats struct {
	ApMAC      string     `json:"ap_mac"`
	Radio      RadioBand  `json:"radio"`
	RadioProto RadioProto `json:"radio_proto"`
	ESSID      string     `json:"essid"`
	BSSID      string     `json:"bssid"`
	Signal     int        `json:"signal"`
	Noise      int        `json:"noise"`

	Channel      *int `json:"channel,omitempty"`
	ChannelWidth *int `json:"channel_width,omitempty"`
	TxRate       *int `json:"tx_rate,omitempty"`
	RxRate       *int `json:"rx_rate,omitempty"`
	TxPower      *int `json:"tx_power,omitempty"`
	TxRetries    *int `json:"tx_retries,omitempty"`

	NSS              *int  `json:"nss,omitempty"`
	PowersaveEnabled *bool `json:"powersave_enabled,omitempty"`
	Is11r            *bool `json:"is_11r,omitempty"`
	IdleTime         *int  `json:"idletime,omitempty"`
	CCQ              *int  `json:"ccq,omitempty"`

	WifiTxAttempts         *int64   `json:"wifi_tx_attempts,omitempty"`
	WifiTxDropped          *int64   `json:"wifi_tx_dropped,omitempty"`
	WifiTxRetriesPercent   *float64 `json:"wifi_tx_retries_percentage,omitempty"`
	Authorized             *bool    `json:"authorized,omitempty"`
	RadioName              *string  `json:"radio_name,omitempty"`
	TxMCS                  *int     `json:"tx_mcs,omitempty"`
}

func (w *WifiStats) Validate() error {
	if !w.Radio.valid() {
		return fieldErr("radio", "unknown radio band")
	}
	if !w.RadioProto.valid() {
		return fieldErr("radio_proto", "unknown radio protocol")
	}
	// dBm readings are always negative.
	if w.Signal > 0 {
		return fieldErr("signal", "dBm value must not be positive")
	}
	if w.Noise > 0 {
		return fieldErr("noise", "dBm value must not be positive")
	}
	if w.Channel != nil && !w.Radio.channelValid(*w.Channel) {
		return fieldErr("channel", "channel not valid for radio band")
	}
	if w.ChannelWidth != nil && !channelWidthValid(*w.ChannelWidth) {
		return fieldErr("channel_width", "channel width must be 20, 40, 80, 160, or 320")
	}
	return firstErr(
		requireMAC("ap_mac", &w.ApMAC),
		requireMAC("bssid", &w.BSSID),
		requireString("essid", w.ESSID),
		atLeastPtr("tx_rate", w.TxRate, 0),
		atLeastPtr("rx_rate", w.RxRate, 0),
		atLeastPtr("tx_power", w.TxPower, 0),
		atLeastPtr("tx_retries", w.TxRetries, 0),
		inRangePtr("nss", w.NSS, 1, 8),
		atLeastPtr("idletime", w.IdleTime, 0),
		inRangePtr("ccq", w.CCQ, 0, 1000),
		atLeastPtr("wifi_tx_attempts", w.WifiTxAttempts, 0),
		atLeastPtr("wifi_tx_dropped", w.WifiTxDropped, 0),
		inRangePtr("wifi_tx_retries_percentage", w.WifiTxRetriesPercent, 0, 100),
		inRangePtr("tx_mcs", w.TxMCS, 0, 11),
	)
}

func channelWidthValid(w int) bool {
	switch w {
	case 20, 40, 80, 160, 320:
		return true
	}
	return false
}

// Client is a station known to the controller, wired or wireless.
type Client struct {
	Statistics
	NetworkInfo

	MAC       string `json:"mac"`
	Hostname  string `json:"hostname"`
	IP        string `json:"ip,omitempty"`
	LastIP    string `json:"last_ip,omitempty"`
	IsWired   bool   `json:"is_wired"`
	FirstSeen int64  `json:"first_seen"`
	LastSeen  *int64 `json:"last_seen,omitempty"`
	Uptime    *int64 `json:"uptime,omitempty"`
	SiteID    string `json:"site_id,omitempty"`

	WifiStats *WifiStats `json:"wifi_stats,omitempty"`

	OUI           *string  `json:"oui,omitempty"`
	UseFixedIP    *bool    `json:"use_fixedip,omitempty"`
	FixedIP       string   `json:"fixed_ip,omitempty"`
	IPv6Addresses []string `json:"ipv6_addresses,omitempty"`
	Confidence    *int     `json:"confidence,omitempty"`
	GwMAC         string   `json:"gw_mac,omitempty"`
	GwVLAN        *int     `json:"gw_vlan,omitempty"`
	SwMAC         string   `json:"sw_mac,omitempty"`
	SwPort        *int     `json:"sw_port,omitempty"`
	SwDepth       *int     `json:"sw_depth,omitempty"`
	WiredRateMbps *int     `json:"wired_rate_mbps,omitempty"`
	Noted         *bool    `json:"noted,omitempty"`
}

func (c *Client) Validate() error {
	if c.WifiStats != nil {
		if err := c.WifiStats.Validate(); err != nil {
			return err
		}
	}
	return firstErr(
		requireMAC("mac", &c.MAC),
		requireString("hostname", c.Hostname),
		validateIP("ip", c.IP),
		validateIP("last_ip", c.LastIP),
		validateIP("fixed_ip", c.FixedIP),
		validateIPv6List("ipv6_addresses", c.IPv6Addresses),
		validateMAC("gw_mac", &c.GwMAC),
		validateMAC("sw_mac", &c.SwMAC),
		inRangePtr("confidence", c.Confidence, 0, 100),
		inRangePtr("gw_vlan", c.GwVLAN, 0, 4095),
		atLeastPtr("sw_port", c.SwPort, 1),
		atLeastPtr("sw_depth", c.SwDepth, 0),
		atLeastPtr("wired_rate_mbps", c.WiredRateMbps, 0),
		atLeastPtr("uptime", c.Uptime, 0),
		c.Statistics.validate(),
		c.NetworkInfo.validate(),
	)
}

// Device is a UniFi network device adopted by (or visible to) the controller.
type Device struct {
	Statistics
	SystemStats

	MAC             string     `json:"mac"`
	Type            DeviceType `json:"type"`
	Model           string     `json:"model,omitempty"`
	Name            string     `json:"name,omitempty"`
	IP              string     `json:"ip,omitempty"`
	Version         string     `json:"version,omitempty"`
	RequiredVersion string     `json:"required_version,omitempty"`
	SiteID          string     `json:"site_id,omitempty"`
	DeviceID        string     `json:"device_id,omitempty"`

	PortTable []PortStats `json:"port_table,omitempty"`

	Adopted       *bool        `json:"adopted,omitempty"`
	LedOverride   *LedOverride `json:"led_override,omitempty"`
	InformURL     string       `json:"inform_url,omitempty"`
	InformIP      string       `json:"inform_ip,omitempty"`
	CfgVersion    *string      `json:"cfgversion,omitempty"`
	Uptime        *int64       `json:"uptime,omitempty"`
	Bytes         *int64       `json:"bytes,omitempty"`
	NumSta        *int         `json:"num_sta,omitempty"`
	UserNumSta    *int         `json:"user-num_sta,omitempty"`
	GuestNumSta   *int         `json:"guest-num_sta,omitempty"`
	State         *int         `json:"state,omitempty"`
	Upgradable    *bool        `json:"upgradable,omitempty"`
	KernelVersion *string      `json:"kernel_version,omitempty"`
	Architecture  *string      `json:"architecture,omitempty"`
	BoardRev      *int         `json:"board_rev,omitempty"`
	DiscoveredVia *string      `json:"discovered_via,omitempty"`
	Unsupported   *bool        `json:"unsupported,omitempty"`
}

func (d *Device) Validate() error {
	if !d.Type.valid() {
		return fieldErr("type", "unknown device type")
	}
	if d.LedOverride != nil && !d.LedOverride.valid() {
		return fieldErr("led_override", "unknown LED override")
	}
	if d.InformURL != "" && !strings.HasPrefix(d.InformURL, "http://") && !strings.HasPrefix(d.InformURL, "https://") {
		return fieldErr("inform_url", "must start with http:// or https://")
	}
	for i := range d.PortTable {
		if err := d.PortTable[i].Validate(); err != nil {
			return err
		}
	}
	return firstErr(
		requireMAC("mac", &d.MAC),
		validateIP("ip", d.IP),
		validateIP("inform_ip", d.InformIP),
		validateVersion("version", d.Version),
		validateVersion("required_version", d.RequiredVersion),
		atLeastPtr("uptime", d.Uptime, 0),
		atLeastPtr("bytes", d.Bytes, 0),
		atLeastPtr("num_sta", d.NumSta, 0),
		atLeastPtr("user-num_sta", d.UserNumSta, 0),
		atLeastPtr("guest-num_sta", d.GuestNumSta, 0),
		d.Statistics.validate(),
		d.SystemStats.validate(),
	)
}
