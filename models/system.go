package models

// ProcessInfo is one controller-reported process.
type ProcessInfo struct {
	PID      int     `json:"pid"`
	Name     string  `json:"name"`
	CPUUsage float64 `json:"cpu_usage"`
	MemUsage float64 `json:"mem_usage"`
	MemRSS   int64   `json:"mem_rss"`
	MemVSZ   int64   `json:"mem_vsz"`
	Threads  *int    `json:"threads,omitempty"`
	Uptime   *int64  `json:"uptime,omitempty"`
}

func (p *ProcessInfo) Validate() error {
	return firstErr(
		atLeast("pid", p.PID, 1),
		requireString("name", p.Name),
		inRange("cpu_usage", p.CPUUsage, 0, 100),
		inRange("mem_usage", p.MemUsage, 0, 100),
		atLeast("mem_rss", p.MemRSS, 0),
		atLeast("mem_vsz", p.MemVSZ, 0),
		atLeastPtr("threads", p.Threads, 1),
		atLeastPtr("uptime", p.Uptime, 0),
	)
}

// ServiceStatus is one controller service with its run state.
type ServiceStatus struct {
	Name    string `json:"name"`
	Status  string `json:"status"`
	Enabled bool   `json:"enabled"`

	LastStart    *int64 `json:"last_start,omitempty"`
	LastStop     *int64 `json:"last_stop,omitempty"`
	RestartCount *int   `json:"restart_count,omitempty"`
	PID          *int   `json:"pid,omitempty"`
}

func (s *ServiceStatus) Validate() error {
	switch s.Status {
	case "running", "stopped", "error":
	default:
		return fieldErr("status", "must be running, stopped, or error")
	}
	return firstErr(
		requireString("name", s.Name),
		atLeastPtr("last_start", s.LastStart, 0),
		atLeastPtr("last_stop", s.LastStop, 0),
		atLeastPtr("restart_count", s.RestartCount, 0),
		atLeastPtr("pid", s.PID, 1),
	)
}

// SystemHealth is one subsystem health report.
type SystemHealth struct {
	DeviceType    DeviceType `json:"device_type"`
	Subsystem     string     `json:"subsystem"`
	Status        string     `json:"status"`
	StatusCode    int        `json:"status_code"`
	StatusMessage string     `json:"status_message"`
	LastCheck     int64      `json:"last_check"`
	NextCheck     int64      `json:"next_check"`
}

func (h *SystemHealth) Validate() error {
	if !h.DeviceType.valid() {
		return fieldErr("device_type", "unknown device type")
	}
	switch h.Status {
	case "ok", "warning", "error":
	default:
		return fieldErr("status", "must be ok, warning, or error")
	}
	if h.NextCheck <= h.LastCheck {
		return fieldErr("next_check", "must be after last_check")
	}
	return firstErr(
		requireString("subsystem", h.Subsystem),
		atLeast("status_code", h.StatusCode, 0),
		requireString("status_message", h.StatusMessage),
	)
}

// SystemStatus is the aggregate status of the controller host.
type SystemStatus struct {
	DeviceType    DeviceType `json:"device_type"`
	Version       string     `json:"version"`
	UpdateVersion string     `json:"update_version,omitempty"`
	Uptime        int64      `json:"uptime"`

	Health    []SystemHealth  `json:"health"`
	Processes []ProcessInfo   `json:"processes"`
	Services  []ServiceStatus `json:"services"`
	Alerts    []string        `json:"alerts,omitempty"`

	Upgradable       bool `json:"upgradable"`
	UpdateAvailable  bool `json:"update_available"`
	StorageUsage     int  `json:"storage_usage"`
	StorageAvailable int64 `json:"storage_available"`
}

func (s *SystemStatus) Validate() error {
	if !s.DeviceType.valid() {
		return fieldErr("device_type", "unknown device type")
	}
	if len(s.Health) == 0 {
		return fieldErr("health", "at least one subsystem report required")
	}
	for i := range s.Health {
		if err := s.Health[i].Validate(); err != nil {
			return err
		}
	}
	for i := range s.Processes {
		if err := s.Processes[i].Validate(); err != nil {
			return err
		}
	}
	for i := range s.Services {
		if err := s.Services[i].Validate(); err != nil {
			return err
		}
	}
	return firstErr(
		requireVersion("version", s.Version),
		validateVersion("update_version", s.UpdateVersion),
		atLeast("uptime", s.Uptime, 0),
		inRange("storage_usage", s.StorageUsage, 0, 100),
		atLeast("storage_available", s.StorageAvailable, 0),
	)
}
