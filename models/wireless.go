package models

import "strings"

// RadioSettings describes one radio of an access point. The radio field is
// either a bare band ("ng", "na", "6e") or band+protocol ("na+ac", "na+ax",
// "6e+ax"); the 2.4 GHz band takes no protocol suffix.
type RadioSettings struct {
	Name         string `json:"name"`
	Enabled      bool   `json:"enabled"`
	Radio        string `json:"radio"`
	Channel      int    `json:"channel"`
	ChannelWidth int    `json:"channel_width"`
	TxPower      int    `json:"tx_power"`
	TxPowerMode  string `json:"tx_power_mode"`
}

// Band returns the frequency band portion of the radio field.
func (r *RadioSettings) Band() RadioBand {
	band, _, _ := strings.Cut(r.Radio, "+")
	return RadioBand(band)
}

func (r *RadioSettings) Validate() error {
	if err := requireString("name", r.Name); err != nil {
		return err
	}
	band, proto, hasProto := strings.Cut(r.Radio, "+")
	if !RadioBand(band).valid() {
		return fieldErr("radio", "unknown radio band")
	}
	if hasProto {
		switch RadioBand(band) {
		case Band2G:
			return fieldErr("radio", "2.4 GHz band takes no protocol suffix")
		case Band5G:
			if proto != string(ProtoAC) && proto != string(ProtoAX) {
				return fieldErr("radio", "5 GHz band supports ac or ax only")
			}
		case Band6G:
			if proto != string(ProtoAX) {
				return fieldErr("radio", "6 GHz band supports ax only")
			}
		}
	}
	if !radioChannelValid(RadioBand(band), r.Channel) {
		return fieldErr("channel", "channel not valid for radio band")
	}
	switch r.ChannelWidth {
	case 20, 40, 80, 160:
	default:
		return fieldErr("channel_width", "channel width must be 20, 40, 80, or 160")
	}
	if err := inRange("tx_power", r.TxPower, 0, 30); err != nil {
		return err
	}
	switch r.TxPowerMode {
	case "auto", "low", "medium", "high", "custom":
	default:
		return fieldErr("tx_power_mode", "unknown transmit power mode")
	}
	return nil
}

// radioChannelValid mirrors the controller's configurable channel plans;
// the 6 GHz plan stops at channel 195 for configuration even though clients
// can report up to 233.
func radioChannelValid(band RadioBand, ch int) bool {
	if band == Band6G {
		return ch >= 1 && ch <= 195
	}
	return band.channelValid(ch)
}

// NetworkProfile is a wireless network (SSID) definition.
type NetworkProfile struct {
	Name       string       `json:"name"`
	SSID       string       `json:"ssid"`
	Enabled    bool         `json:"enabled"`
	IsGuest    bool         `json:"is_guest"`
	Security   SecurityMode `json:"security"`
	WPAMode    WPAMode      `json:"wpa_mode"`
	Encryption Encryption   `json:"encryption"`

	VLANEnabled *bool `json:"vlan_enabled,omitempty"`
	VLANID      *int  `json:"vlan_id,omitempty"`
	HideSSID    *bool `json:"hide_ssid,omitempty"`
	IsPrivate   *bool `json:"is_private,omitempty"`
	GroupRekey  *int  `json:"group_rekey,omitempty"`

	MACFilterEnabled *bool    `json:"mac_filter_enabled,omitempty"`
	MACFilterList    []string `json:"mac_filter_list,omitempty"`
	MACFilterPolicy  *string  `json:"mac_filter_policy,omitempty"`
}

func (p *NetworkProfile) Validate() error {
	if !p.Security.valid() {
		return fieldErr("security", "unknown security type")
	}
	if !p.WPAMode.valid() {
		return fieldErr("wpa_mode", "unknown WPA mode")
	}
	if !p.Encryption.valid() {
		return fieldErr("encryption", "unknown encryption type")
	}
	if p.MACFilterPolicy != nil && *p.MACFilterPolicy != "allow" && *p.MACFilterPolicy != "deny" {
		return fieldErr("mac_filter_policy", "must be allow or deny")
	}
	return firstErr(
		requireString("name", p.Name),
		requireString("ssid", p.SSID),
		inRangePtr("vlan_id", p.VLANID, 1, 4094),
		atLeastPtr("group_rekey", p.GroupRekey, 0),
		validateMACList("mac_filter_list", p.MACFilterList),
	)
}

// WLANConfiguration is the wireless configuration of a site: radios plus
// network profiles plus site-wide wireless policies.
type WLANConfiguration struct {
	RadioTable      []RadioSettings  `json:"radio_table"`
	NetworkProfiles []NetworkProfile `json:"network_profiles"`

	PMFMode         *PMFMode `json:"pmf_mode,omitempty"`
	MinimumRSSI     *int     `json:"minimum_rssi,omitempty"`
	MinimumUplink   *int     `json:"minimum_uplink,omitempty"`
	MinimumDownlink *int     `json:"minimum_downlink,omitempty"`
	MaxClients      *int     `json:"max_clients,omitempty"`
}

func (w *WLANConfiguration) Validate() error {
	for i := range w.RadioTable {
		if err := w.RadioTable[i].Validate(); err != nil {
			return err
		}
	}
	for i := range w.NetworkProfiles {
		if err := w.NetworkProfiles[i].Validate(); err != nil {
			return err
		}
	}
	if w.PMFMode != nil && !w.PMFMode.valid() {
		return fieldErr("pmf_mode", "unknown PMF mode")
	}
	return firstErr(
		inRangePtr("minimum_rssi", w.MinimumRSSI, -100, 0),
		atLeastPtr("minimum_uplink", w.MinimumUplink, 0),
		atLeastPtr("minimum_downlink", w.MinimumDownlink, 0),
		atLeastPtr("max_clients", w.MaxClients, 1),
	)
}
