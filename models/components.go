package models

// The original vendor payloads repeat the same field groups across device,
// client, and port records. The groups are modeled as embeddable components,
// each owning the validation of its own fields.

// Statistics holds transfer counters common to devices, clients, and ports.
type Statistics struct {
	TxBytes      *int64   `json:"tx_bytes,omitempty"`
	RxBytes      *int64   `json:"rx_bytes,omitempty"`
	TxPackets    *int64   `json:"tx_packets,omitempty"`
	RxPackets    *int64   `json:"rx_packets,omitempty"`
	BytesR       *float64 `json:"bytes-r,omitempty"`
	TxBytesR     *float64 `json:"tx_bytes-r,omitempty"`
	RxBytesR     *float64 `json:"rx_bytes-r,omitempty"`
	Satisfaction *int     `json:"satisfaction,omitempty"`
}

func (s *Statistics) validate() error {
	return firstErr(
		atLeastPtr("tx_bytes", s.TxBytes, 0),
		atLeastPtr("rx_bytes", s.RxBytes, 0),
		atLeastPtr("tx_packets", s.TxPackets, 0),
		atLeastPtr("rx_packets", s.RxPackets, 0),
		atLeastPtr("bytes-r", s.BytesR, 0),
		atLeastPtr("tx_bytes-r", s.TxBytesR, 0),
		atLeastPtr("rx_bytes-r", s.RxBytesR, 0),
		inRangePtr("satisfaction", s.Satisfaction, 0, 100),
	)
}

// NetworkInfo holds network membership fields.
type NetworkInfo struct {
	NetworkName *string `json:"network_name,omitempty"`
	NetworkID   *string `json:"network_id,omitempty"`
	Netmask     string  `json:"netmask,omitempty"`
	IsGuest     *bool   `json:"is_guest,omitempty"`
	VLAN        *int    `json:"vlan,omitempty"`
}

func (n *NetworkInfo) validate() error {
	return firstErr(
		validateIP("netmask", n.Netmask),
		inRangePtr("vlan", n.VLAN, 1, 4095),
	)
}

// SystemStats holds host-level resource usage.
type SystemStats struct {
	CPUUsage    *float64 `json:"cpu_usage,omitempty"`
	MemUsage    *float64 `json:"mem_usage,omitempty"`
	Temperature *float64 `json:"temperature,omitempty"`
	LoadAvg1    *float64 `json:"loadavg_1,omitempty"`
	LoadAvg5    *float64 `json:"loadavg_5,omitempty"`
	LoadAvg15   *float64 `json:"loadavg_15,omitempty"`
}

func (s *SystemStats) validate() error {
	return firstErr(
		inRangePtr("cpu_usage", s.CPUUsage, 0, 100),
		inRangePtr("mem_usage", s.MemUsage, 0, 100),
		atLeastPtr("temperature", s.Temperature, 0),
		atLeastPtr("loadavg_1", s.LoadAvg1, 0),
		atLeastPtr("loadavg_5", s.LoadAvg5, 0),
		atLeastPtr("loadavg_15", s.LoadAvg15, 0),
	)
}
