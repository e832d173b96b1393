package recommend

import (
	"fmt"
	"strings"

	"github.com/isminet/isminet/models"
)

// Checklist is the built-in set of Apple Wi-Fi recommendation checks, in
// evaluation order.
var Checklist = []Check{
	{Name: "wpa3", Evaluate: checkWPA3},
	{Name: "pmf", Evaluate: checkPMF},
	{Name: "encryption", Evaluate: checkEncryption},
	{Name: "hidden-ssid", Evaluate: checkHiddenSSID},
	{Name: "channel-width", Evaluate: checkChannelWidth},
	{Name: "security-consistency", Evaluate: checkSecurityConsistency},
	{Name: "mac-filtering", Evaluate: checkMACFiltering},
}

func pass(detail string) Result { return Result{Severity: SeverityPass, Detail: detail} }
func warn(detail string) Result { return Result{Severity: SeverityWarn, Detail: detail} }
func fail(detail string) Result { return Result{Severity: SeverityFail, Detail: detail} }

// checkWPA3 wants every protected SSID on WPA3 or WPA2/WPA3 transition mode.
// Plain WPA2 still works for every Apple device but blocks the newer
// handshake protections, so it warns rather than fails.
func checkWPA3(snap *Snapshot) Result {
	var wpa2 []string
	for i := range snap.Profiles {
		p := &snap.Profiles[i]
		if p.Security == models.SecurityOpen {
			continue
		}
		if p.WPAMode == models.WPA2 {
			wpa2 = append(wpa2, p.SSID)
		}
	}
	if len(wpa2) > 0 {
		return warn(fmt.Sprintf("SSIDs on WPA2 only, prefer WPA3 or WPA2/WPA3 transition: %s",
			strings.Join(wpa2, ", ")))
	}
	return pass("all protected SSIDs use WPA3 or WPA2/WPA3 transition")
}

// checkPMF wants Protected Management Frames at least optional. WPA3
// requires PMF, so disabling it breaks WPA3 clients outright.
func checkPMF(snap *Snapshot) Result {
	for i := range snap.WLANs {
		w := &snap.WLANs[i]
		if w.PMFMode != nil && *w.PMFMode == models.PMFDisabled {
			return fail("protected management frames disabled, set PMF to optional or required")
		}
	}
	return pass("protected management frames enabled")
}

// checkEncryption rejects TKIP. Apple deprecated it and modern radios drop
// to legacy data rates when either WEP or TKIP is negotiated.
func checkEncryption(snap *Snapshot) Result {
	var tkip []string
	for i := range snap.Profiles {
		p := &snap.Profiles[i]
		if p.Encryption == models.EncryptionTKIP {
			tkip = append(tkip, p.SSID)
		}
	}
	if len(tkip) > 0 {
		return fail(fmt.Sprintf("SSIDs using TKIP, switch to AES: %s", strings.Join(tkip, ", ")))
	}
	return pass("no SSID uses TKIP")
}

// checkHiddenSSID flags hidden networks. Hiding the SSID does not hide the
// network and forces clients to probe for it, which leaks the name anyway.
func checkHiddenSSID(snap *Snapshot) Result {
	var hidden []string
	for i := range snap.Profiles {
		p := &snap.Profiles[i]
		if p.HideSSID != nil && *p.HideSSID {
			hidden = append(hidden, p.SSID)
		}
	}
	if len(hidden) > 0 {
		return warn(fmt.Sprintf("hidden SSIDs: %s", strings.Join(hidden, ", ")))
	}
	return pass("no hidden SSIDs")
}

// checkChannelWidth wants 5 and 6 GHz radios at 40 MHz or wider, but warns
// above 80 MHz where DFS and co-channel interference usually cost more
// than the extra width gains.
func checkChannelWidth(snap *Snapshot) Result {
	var narrow, wide []string
	for i := range snap.WLANs {
		for j := range snap.WLANs[i].RadioTable {
			r := &snap.WLANs[i].RadioTable[j]
			if !r.Enabled || r.Band() == models.Band2G {
				continue
			}
			switch {
			case r.ChannelWidth < 40:
				narrow = append(narrow, r.Name)
			case r.ChannelWidth > 80:
				wide = append(wide, r.Name)
			}
		}
	}
	switch {
	case len(narrow) > 0:
		return warn(fmt.Sprintf("5/6 GHz radios below 40 MHz: %s", strings.Join(narrow, ", ")))
	case len(wide) > 0:
		return warn(fmt.Sprintf("radios above 80 MHz, consider 80 MHz to limit DFS exposure: %s",
			strings.Join(wide, ", ")))
	}
	return pass("5/6 GHz channel widths within the 40-80 MHz recommendation")
}

// checkSecurityConsistency wants one security configuration per SSID name.
// Clients treat same-named networks as one network; mismatched settings
// cause silent roaming failures.
func checkSecurityConsistency(snap *Snapshot) Result {
	type security struct {
		mode models.SecurityMode
		wpa  models.WPAMode
		enc  models.Encryption
	}
	seen := make(map[string]security)
	var inconsistent []string
	for i := range snap.Profiles {
		p := &snap.Profiles[i]
		cur := security{mode: p.Security, wpa: p.WPAMode, enc: p.Encryption}
		prev, ok := seen[p.SSID]
		if !ok {
			seen[p.SSID] = cur
			continue
		}
		if prev != cur {
			inconsistent = append(inconsistent, p.SSID)
		}
	}
	if len(inconsistent) > 0 {
		return fail(fmt.Sprintf("SSIDs with conflicting security settings: %s",
			strings.Join(inconsistent, ", ")))
	}
	return pass("security settings consistent per SSID")
}

// checkMACFiltering discourages MAC address filters: they add no security
// and fight the private Wi-Fi address rotation of current clients.
func checkMACFiltering(snap *Snapshot) Result {
	var filtered []string
	for i := range snap.Profiles {
		p := &snap.Profiles[i]
		if p.MACFilterEnabled != nil && *p.MACFilterEnabled {
			filtered = append(filtered, p.SSID)
		}
	}
	if len(filtered) > 0 {
		return warn(fmt.Sprintf("SSIDs with MAC filtering, incompatible with private Wi-Fi addresses: %s",
			strings.Join(filtered, ", ")))
	}
	return pass("no SSID uses MAC filtering")
}
