package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetaOK(t *testing.T) {
	t.Parallel()

	assert.True(t, Meta{RC: "ok"}.OK())
	assert.True(t, Meta{}.OK(), "absent rc counts as success")
	assert.False(t, Meta{RC: "error", Msg: "api.err.NoSiteContext"}.OK())
}

func TestEnvelopeValidate(t *testing.T) {
	t.Parallel()

	t.Run("valid list", func(t *testing.T) {
		t.Parallel()

		body := `{
			"meta": {"rc": "ok", "count": 2},
			"data": [
				{"_id": "a1", "name": "default", "desc": "Default", "device_count": 3},
				{"_id": "a2", "name": "branch", "desc": "Branch office", "device_count": 1}
			]
		}`

		var env Envelope[*Site]
		require.NoError(t, json.Unmarshal([]byte(body), &env))
		require.NoError(t, env.Validate())
		assert.Len(t, env.Data, 2)
		assert.Equal(t, "default", env.Data[0].Name)
	})

	t.Run("count mismatch", func(t *testing.T) {
		t.Parallel()

		body := `{
			"meta": {"rc": "ok", "count": 5},
			"data": [{"_id": "a1", "name": "default", "desc": "Default", "device_count": 0}]
		}`

		var env Envelope[*Site]
		require.NoError(t, json.Unmarshal([]byte(body), &env))
		err := env.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "meta.count")
	})

	t.Run("invalid element rejects the envelope", func(t *testing.T) {
		t.Parallel()

		body := `{
			"meta": {"rc": "ok"},
			"data": [
				{"_id": "a1", "name": "default", "desc": "Default", "device_count": 0},
				{"_id": "a2", "name": "", "desc": "Nameless", "device_count": 0}
			]
		}`

		var env Envelope[*Site]
		require.NoError(t, json.Unmarshal([]byte(body), &env))
		err := env.Validate()
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("empty data with zero count", func(t *testing.T) {
		t.Parallel()

		body := `{"meta": {"rc": "ok", "count": 0}, "data": []}`

		var env Envelope[*Site]
		require.NoError(t, json.Unmarshal([]byte(body), &env))
		assert.NoError(t, env.Validate())
	})
}

func TestSiteValidate(t *testing.T) {
	t.Parallel()

	site := Site{ID: "abc", Name: "default", Description: "Default", DeviceCount: 2}
	assert.NoError(t, site.Validate())

	site.ID = ""
	err := site.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "_id")
}

func TestVersionInfoValidate(t *testing.T) {
	t.Parallel()

	info := VersionInfo{Version: "7.5.187", SiteID: "abc"}
	assert.NoError(t, info.Validate())

	info.Version = "7.5"
	err := info.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "version")

	info.Version = "7.5.187"
	info.UpdateVersion = "8.0"
	err = info.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "update_version")
}
