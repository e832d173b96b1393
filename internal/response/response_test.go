package response

import (
	"testing"

	"github.com/isminet/isminet/models"
)

const siteList = `{
	"meta": {"rc": "ok", "count": 2},
	"data": [
		{"_id": "a1", "name": "default", "desc": "Default", "device_count": 3},
		{"_id": "a2", "name": "branch", "desc": "Branch office", "device_count": 1}
	]
}`

func TestList(t *testing.T) {
	t.Parallel()

	sites, meta, err := List[models.Site]([]byte(siteList))
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if !meta.OK() {
		t.Errorf("meta not ok: %+v", meta)
	}
	if len(sites) != 2 {
		t.Fatalf("got %d records, want 2", len(sites))
	}
	if sites[0].Name != "default" || sites[1].Name != "branch" {
		t.Errorf("unexpected records: %+v", sites)
	}
}

func TestListEmptyData(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "empty array", body: `{"meta":{"rc":"ok"},"data":[]}`},
		{name: "missing data", body: `{"meta":{"rc":"ok"}}`},
		{name: "null data", body: `{"meta":{"rc":"ok"},"data":null}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sites, meta, err := List[models.Site]([]byte(tt.body))
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if len(sites) != 0 {
				t.Errorf("got %d records, want none", len(sites))
			}
			if !meta.OK() {
				t.Errorf("meta not ok: %+v", meta)
			}
		})
	}
}

func TestListRejectsInvalidRecord(t *testing.T) {
	t.Parallel()

	body := `{
		"meta": {"rc": "ok"},
		"data": [
			{"_id": "a1", "name": "default", "desc": "Default", "device_count": 0},
			{"_id": "a2", "name": "", "desc": "Nameless", "device_count": 0}
		]
	}`

	_, _, err := List[models.Site]([]byte(body))
	if err == nil {
		t.Fatal("invalid record accepted")
	}
	if !models.IsValidationError(err) {
		t.Errorf("error is not a validation error: %v", err)
	}
}

func TestListRejectsCountMismatch(t *testing.T) {
	t.Parallel()

	body := `{
		"meta": {"rc": "ok", "count": 3},
		"data": [{"_id": "a1", "name": "default", "desc": "Default", "device_count": 0}]
	}`

	_, _, err := List[models.Site]([]byte(body))
	if err == nil {
		t.Fatal("count mismatch accepted")
	}
	if !models.IsValidationError(err) {
		t.Errorf("error is not a validation error: %v", err)
	}
}

func TestListRejectsMalformedJSON(t *testing.T) {
	t.Parallel()

	for _, body := range []string{``, `not json`, `{"data": "string"}`} {
		if _, _, err := List[models.Site]([]byte(body)); err == nil {
			t.Errorf("List(%q) accepted malformed body", body)
		}
	}
}

func TestOneBareObject(t *testing.T) {
	t.Parallel()

	body := `{"_id": "a1", "name": "default", "desc": "Default", "device_count": 0}`

	site, _, err := One[models.Site]([]byte(body))
	if err != nil {
		t.Fatalf("One: %v", err)
	}
	if site.Name != "default" {
		t.Errorf("name = %q, want default", site.Name)
	}
}

func TestOneEnvelope(t *testing.T) {
	t.Parallel()

	body := `{
		"meta": {"rc": "ok", "count": 1},
		"data": [{"_id": "a1", "name": "default", "desc": "Default", "device_count": 0}]
	}`

	site, meta, err := One[models.Site]([]byte(body))
	if err != nil {
		t.Fatalf("One: %v", err)
	}
	if site.Name != "default" {
		t.Errorf("name = %q, want default", site.Name)
	}
	if !meta.OK() {
		t.Errorf("meta not ok: %+v", meta)
	}
}

func TestOneEnvelopeWithoutRecords(t *testing.T) {
	t.Parallel()

	body := `{"meta": {"rc": "ok"}, "data": []}`

	_, _, err := One[models.Site]([]byte(body))
	if err == nil {
		t.Fatal("empty envelope accepted for a single-record decode")
	}
	if !models.IsValidationError(err) {
		t.Errorf("error is not a validation error: %v", err)
	}
}

func TestOneRejectsInvalidRecord(t *testing.T) {
	t.Parallel()

	body := `{"_id": "", "name": "default", "desc": "Default", "device_count": 0}`

	_, _, err := One[models.Site]([]byte(body))
	if err == nil {
		t.Fatal("invalid bare record accepted")
	}
	if !models.IsValidationError(err) {
		t.Errorf("error is not a validation error: %v", err)
	}
}

func TestMeta(t *testing.T) {
	t.Parallel()

	meta, err := Meta([]byte(`{"meta": {"rc": "error", "msg": "api.err.InvalidPayload"}}`))
	if err != nil {
		t.Fatalf("Meta: %v", err)
	}
	if meta.OK() {
		t.Error("error meta reported as ok")
	}
	if meta.Msg != "api.err.InvalidPayload" {
		t.Errorf("msg = %q", meta.Msg)
	}

	meta, err = Meta(nil)
	if err != nil {
		t.Fatalf("Meta(nil): %v", err)
	}
	if !meta.OK() {
		t.Error("empty body meta should count as ok")
	}
}
