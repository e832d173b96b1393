package recommend

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isminet/isminet/internal/testutil"
	"github.com/isminet/isminet/unifi"
)

func TestCollect(t *testing.T) {
	t.Parallel()

	writeJSON := func(body string) http.HandlerFunc {
		return func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(body))
		}
	}

	server := testutil.NewMockServerMulti(t, map[string]http.HandlerFunc{
		"/api/s/default/rest/networkconf": writeJSON(`{
			"meta": {"rc": "ok"},
			"data": [{"name": "Home", "ssid": "home", "security": "wpa-psk", "wpa_mode": "wpa3", "encryption": "aes"}]
		}`),
		"/api/s/default/stat/device": writeJSON(`{
			"meta": {"rc": "ok"},
			"data": [
				{"mac": "aa:bb:cc:dd:ee:ff", "type": "uap", "name": "Office AP"},
				{"mac": "aa:bb:cc:dd:ee:01", "type": "usw", "name": "Switch"}
			]
		}`),
		"/api/s/default/rest/wlanconf/aa:bb:cc:dd:ee:ff": writeJSON(`{
			"meta": {"rc": "ok"},
			"data": [{
				"radio_table": [
					{"name": "ra0", "enabled": true, "radio": "ng", "channel": 6, "channel_width": 20, "tx_power": 20, "tx_power_mode": "auto"}
				],
				"pmf_mode": "optional"
			}]
		}`),
	})
	defer server.Close()

	client, err := unifi.NewWithConfig(&unifi.Config{
		ControllerURL: server.URL,
		APIKey:        "test-api-key",
		Site:          "default",
		VerifySSL:     true,
		MaxRetries:    1,
		RetryWaitTime: time.Millisecond,
	})
	require.NoError(t, err)

	snap, err := Collect(context.Background(), client)
	require.NoError(t, err)

	assert.Len(t, snap.Profiles, 1)
	assert.Len(t, snap.Devices, 2)
	// Only the access point's wireless configuration is fetched.
	require.Len(t, snap.WLANs, 1)
	require.NotNil(t, snap.WLANs[0].PMFMode)

	report := Evaluate(snap)
	assert.True(t, report.OK())
}
