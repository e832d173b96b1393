// Package recommend evaluates a site's wireless configuration against
// Apple's Wi-Fi network recommendations. It gathers a snapshot through the
// domain client and runs a fixed checklist over it; each check yields a
// pass, warn, or fail result with a human-readable detail line.
package recommend

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/isminet/isminet/models"
	"github.com/isminet/isminet/unifi"
)

// Severity grades a check result.
type Severity string

const (
	SeverityPass Severity = "pass"
	SeverityWarn Severity = "warn"
	SeverityFail Severity = "fail"
)

// Snapshot is the wireless state of a site at one point in time.
type Snapshot struct {
	Profiles []models.NetworkProfile
	WLANs    []models.WLANConfiguration
	Devices  []models.Device
}

// Collect gathers a snapshot through the client. Device collection is best
// effort: profiles are mandatory, per-access-point wireless configurations
// are fetched for every access point found.
func Collect(ctx context.Context, client unifi.Client) (*Snapshot, error) {
	profiles, err := client.ListNetworkProfiles(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "collect network profiles")
	}

	devices, err := client.ListDevices(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "collect devices")
	}

	snap := &Snapshot{
		Profiles: profiles,
		Devices:  devices,
	}
	for i := range devices {
		if devices[i].Type != models.DeviceUAP {
			continue
		}
		cfg, err := client.GetWLANConfig(ctx, devices[i].MAC)
		if err != nil {
			return nil, errors.Wrapf(err, "collect wireless configuration for %s", devices[i].MAC)
		}
		snap.WLANs = append(snap.WLANs, *cfg)
	}
	return snap, nil
}

// Check is a named rule evaluated against a snapshot.
type Check struct {
	Name     string
	Evaluate func(*Snapshot) Result
}

// Result is the outcome of one check.
type Result struct {
	Check    string
	Severity Severity
	Detail   string
}

// Report holds the results of one evaluation pass in checklist order.
type Report struct {
	Results []Result
}

// Failed returns the results with fail severity.
func (r *Report) Failed() []Result {
	return r.filter(SeverityFail)
}

// Warned returns the results with warn severity.
func (r *Report) Warned() []Result {
	return r.filter(SeverityWarn)
}

// OK reports whether no check failed.
func (r *Report) OK() bool {
	return len(r.Failed()) == 0
}

func (r *Report) filter(sev Severity) []Result {
	var out []Result
	for _, res := range r.Results {
		if res.Severity == sev {
			out = append(out, res)
		}
	}
	return out
}

// Evaluate runs every check in the checklist over the snapshot. The pass is
// synchronous; checks are pure functions of the snapshot.
func Evaluate(snap *Snapshot) *Report {
	report := &Report{Results: make([]Result, 0, len(Checklist))}
	for _, check := range Checklist {
		res := check.Evaluate(snap)
		res.Check = check.Name
		report.Results = append(report.Results, res)
	}
	return report
}
