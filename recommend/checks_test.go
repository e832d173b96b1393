package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isminet/isminet/models"
)

func profile(ssid string, wpa models.WPAMode, enc models.Encryption) models.NetworkProfile {
	return models.NetworkProfile{
		Name:       ssid,
		SSID:       ssid,
		Enabled:    true,
		Security:   models.SecurityWPAPSK,
		WPAMode:    wpa,
		Encryption: enc,
	}
}

func goodSnapshot() *Snapshot {
	pmf := models.PMFRequired
	return &Snapshot{
		Profiles: []models.NetworkProfile{
			profile("home", models.WPA3, models.EncryptionAES),
		},
		WLANs: []models.WLANConfiguration{{
			RadioTable: []models.RadioSettings{
				{Name: "ra0", Enabled: true, Radio: "ng", Channel: 6, ChannelWidth: 20, TxPower: 20, TxPowerMode: "auto"},
				{Name: "rai0", Enabled: true, Radio: "na+ax", Channel: 36, ChannelWidth: 80, TxPower: 23, TxPowerMode: "auto"},
			},
			PMFMode: &pmf,
		}},
	}
}

func resultFor(t *testing.T, report *Report, check string) Result {
	t.Helper()
	for _, res := range report.Results {
		if res.Check == check {
			return res
		}
	}
	t.Fatalf("no result for check %q", check)
	return Result{}
}

func TestEvaluateCleanConfiguration(t *testing.T) {
	t.Parallel()

	report := Evaluate(goodSnapshot())
	require.Len(t, report.Results, len(Checklist))
	assert.True(t, report.OK())
	assert.Empty(t, report.Failed())
	assert.Empty(t, report.Warned())
}

func TestCheckWPA3(t *testing.T) {
	t.Parallel()

	t.Run("wpa2 only warns", func(t *testing.T) {
		t.Parallel()
		snap := goodSnapshot()
		snap.Profiles = []models.NetworkProfile{profile("legacy", models.WPA2, models.EncryptionAES)}
		res := resultFor(t, Evaluate(snap), "wpa3")
		assert.Equal(t, SeverityWarn, res.Severity)
		assert.Contains(t, res.Detail, "legacy")
	})

	t.Run("transition mode passes", func(t *testing.T) {
		t.Parallel()
		snap := goodSnapshot()
		snap.Profiles = []models.NetworkProfile{profile("mixed", models.WPA3Transition, models.EncryptionAES)}
		res := resultFor(t, Evaluate(snap), "wpa3")
		assert.Equal(t, SeverityPass, res.Severity)
	})

	t.Run("open network not judged on WPA", func(t *testing.T) {
		t.Parallel()
		snap := goodSnapshot()
		open := profile("cafe", models.WPA2, models.EncryptionNone)
		open.Security = models.SecurityOpen
		snap.Profiles = []models.NetworkProfile{open}
		res := resultFor(t, Evaluate(snap), "wpa3")
		assert.Equal(t, SeverityPass, res.Severity)
	})
}

func TestCheckPMF(t *testing.T) {
	t.Parallel()

	snap := goodSnapshot()
	disabled := models.PMFDisabled
	snap.WLANs[0].PMFMode = &disabled

	res := resultFor(t, Evaluate(snap), "pmf")
	assert.Equal(t, SeverityFail, res.Severity)
	assert.False(t, Evaluate(snap).OK())
}

func TestCheckEncryption(t *testing.T) {
	t.Parallel()

	snap := goodSnapshot()
	snap.Profiles = append(snap.Profiles, profile("old-iot", models.WPA2, models.EncryptionTKIP))

	res := resultFor(t, Evaluate(snap), "encryption")
	assert.Equal(t, SeverityFail, res.Severity)
	assert.Contains(t, res.Detail, "old-iot")
}

func TestCheckHiddenSSID(t *testing.T) {
	t.Parallel()

	snap := goodSnapshot()
	hidden := true
	snap.Profiles[0].HideSSID = &hidden

	res := resultFor(t, Evaluate(snap), "hidden-ssid")
	assert.Equal(t, SeverityWarn, res.Severity)
	assert.Contains(t, res.Detail, "home")
}

func TestCheckChannelWidth(t *testing.T) {
	t.Parallel()

	t.Run("narrow 5 GHz warns", func(t *testing.T) {
		t.Parallel()
		snap := goodSnapshot()
		snap.WLANs[0].RadioTable[1].ChannelWidth = 20
		res := resultFor(t, Evaluate(snap), "channel-width")
		assert.Equal(t, SeverityWarn, res.Severity)
	})

	t.Run("160 MHz warns on DFS advice", func(t *testing.T) {
		t.Parallel()
		snap := goodSnapshot()
		snap.WLANs[0].RadioTable[1].ChannelWidth = 160
		res := resultFor(t, Evaluate(snap), "channel-width")
		assert.Equal(t, SeverityWarn, res.Severity)
	})

	t.Run("2.4 GHz width not judged", func(t *testing.T) {
		t.Parallel()
		snap := goodSnapshot()
		snap.WLANs[0].RadioTable[0].ChannelWidth = 20
		res := resultFor(t, Evaluate(snap), "channel-width")
		assert.Equal(t, SeverityPass, res.Severity)
	})

	t.Run("disabled radio ignored", func(t *testing.T) {
		t.Parallel()
		snap := goodSnapshot()
		snap.WLANs[0].RadioTable[1].Enabled = false
		snap.WLANs[0].RadioTable[1].ChannelWidth = 20
		res := resultFor(t, Evaluate(snap), "channel-width")
		assert.Equal(t, SeverityPass, res.Severity)
	})
}

func TestCheckSecurityConsistency(t *testing.T) {
	t.Parallel()

	snap := goodSnapshot()
	snap.Profiles = []models.NetworkProfile{
		profile("roaming", models.WPA3, models.EncryptionAES),
		profile("roaming", models.WPA2, models.EncryptionAES),
	}

	res := resultFor(t, Evaluate(snap), "security-consistency")
	assert.Equal(t, SeverityFail, res.Severity)
	assert.Contains(t, res.Detail, "roaming")
}

func TestCheckMACFiltering(t *testing.T) {
	t.Parallel()

	snap := goodSnapshot()
	enabled := true
	snap.Profiles[0].MACFilterEnabled = &enabled

	res := resultFor(t, Evaluate(snap), "mac-filtering")
	assert.Equal(t, SeverityWarn, res.Severity)
}

func TestReportAccessors(t *testing.T) {
	t.Parallel()

	report := &Report{Results: []Result{
		{Check: "a", Severity: SeverityPass},
		{Check: "b", Severity: SeverityWarn},
		{Check: "c", Severity: SeverityFail},
		{Check: "d", Severity: SeverityFail},
	}}

	assert.Len(t, report.Failed(), 2)
	assert.Len(t, report.Warned(), 1)
	assert.False(t, report.OK())
}
