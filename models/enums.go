package models

// RadioBand identifies the frequency band a radio operates on.
type RadioBand string

const (
	Band2G RadioBand = "ng" // 2.4 GHz
	Band5G RadioBand = "na" // 5 GHz
	Band6G RadioBand = "6e" // 6 GHz
)

func (b RadioBand) valid() bool {
	switch b {
	case Band2G, Band5G, Band6G:
		return true
	}
	return false
}

// channelValid reports whether ch is a legal channel number for the band.
func (b RadioBand) channelValid(ch int) bool {
	switch b {
	case Band2G:
		return ch >= 1 && ch <= 14
	case Band5G:
		return ch >= 36 && ch <= 165
	case Band6G:
		return ch >= 1 && ch <= 233
	}
	return false
}

// RadioProto identifies the 802.11 protocol generation.
type RadioProto string

const (
	ProtoNG RadioProto = "ng" // 802.11n
	ProtoAC RadioProto = "ac" // 802.11ac
	ProtoAX RadioProto = "ax" // 802.11ax (WiFi 6)
	ProtoBE RadioProto = "be" // 802.11be (WiFi 7)
)

func (p RadioProto) valid() bool {
	switch p {
	case ProtoNG, ProtoAC, ProtoAX, ProtoBE:
		return true
	}
	return false
}

// DeviceType identifies the UniFi hardware class.
type DeviceType string

const (
	DeviceUAP    DeviceType = "uap"     // access point
	DeviceUSW    DeviceType = "usw"     // switch
	DeviceUGW    DeviceType = "ugw"     // gateway
	DeviceUDM    DeviceType = "udm"     // Dream Machine
	DeviceUDMPro DeviceType = "udm-pro" // Dream Machine Pro
)

func (t DeviceType) valid() bool {
	switch t {
	case DeviceUAP, DeviceUSW, DeviceUGW, DeviceUDM, DeviceUDMPro:
		return true
	}
	return false
}

// PoEMode is a switch port PoE setting.
type PoEMode string

const (
	PoEOff      PoEMode = "off"
	PoEAuto     PoEMode = "auto"
	PoEPasv24   PoEMode = "pasv24"
	PoEAutoPlus PoEMode = "auto+"
)

func (m PoEMode) valid() bool {
	switch m {
	case PoEOff, PoEAuto, PoEPasv24, PoEAutoPlus:
		return true
	}
	return false
}

// LedOverride is a device LED override setting.
type LedOverride string

const (
	LedOn      LedOverride = "on"
	LedOff     LedOverride = "off"
	LedDefault LedOverride = "default"
)

func (l LedOverride) valid() bool {
	switch l {
	case LedOn, LedOff, LedDefault:
		return true
	}
	return false
}

// DHCPMode is a network DHCP service mode.
type DHCPMode string

const (
	DHCPDisabled DHCPMode = "disabled"
	DHCPServer   DHCPMode = "server"
	DHCPRelay    DHCPMode = "relay"
)

func (m DHCPMode) valid() bool {
	switch m {
	case DHCPDisabled, DHCPServer, DHCPRelay:
		return true
	}
	return false
}

// IGMPMode is an IGMP snooping operating mode.
type IGMPMode string

const (
	IGMPAuto    IGMPMode = "auto"
	IGMPQuerier IGMPMode = "querier"
	IGMPProxy   IGMPMode = "proxy"
)

func (m IGMPMode) valid() bool {
	switch m {
	case IGMPAuto, IGMPQuerier, IGMPProxy:
		return true
	}
	return false
}

// SecurityMode is a WLAN security type.
type SecurityMode string

const (
	SecurityOpen          SecurityMode = "open"
	SecurityWPAPSK        SecurityMode = "wpa-psk"
	SecurityWPAEnterprise SecurityMode = "wpa-enterprise"
)

func (m SecurityMode) valid() bool {
	switch m {
	case SecurityOpen, SecurityWPAPSK, SecurityWPAEnterprise:
		return true
	}
	return false
}

// WPAMode selects the WPA generation for a protected WLAN.
type WPAMode string

const (
	WPA2           WPAMode = "wpa2"
	WPA3           WPAMode = "wpa3"
	WPA3Transition WPAMode = "wpa3-transition"
)

func (m WPAMode) valid() bool {
	switch m {
	case WPA2, WPA3, WPA3Transition:
		return true
	}
	return false
}

// Encryption is a WLAN encryption cipher.
type Encryption string

const (
	EncryptionNone Encryption = "none"
	EncryptionAES  Encryption = "aes"
	EncryptionTKIP Encryption = "tkip"
)

func (e Encryption) valid() bool {
	switch e {
	case EncryptionNone, EncryptionAES, EncryptionTKIP:
		return true
	}
	return false
}

// PMFMode is the Protected Management Frames setting of a WLAN.
type PMFMode string

const (
	PMFDisabled PMFMode = "disabled"
	PMFOptional PMFMode = "optional"
	PMFRequired PMFMode = "required"
)

func (m PMFMode) valid() bool {
	switch m {
	case PMFDisabled, PMFOptional, PMFRequired:
		return true
	}
	return false
}
