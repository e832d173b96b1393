// Package response decodes controller response bodies into validated
// records.
//
// The controller answers with either the standard envelope,
// {"data": [...], "meta": {...}}, or a bare object. Both shapes are handled
// here. Decoding and validation failures are shape errors, reported as
// models.ValidationError so callers can tell them apart from transport and
// HTTP failures; they are never retried.
package response

import (
	"encoding/json"

	"github.com/cockroachdb/errors"

	"github.com/isminet/isminet/models"
)

// recordPtr constrains P to a pointer to T that implements models.Record,
// so decoded values can be validated in place.
type recordPtr[T any] interface {
	*T
	models.Record
}

type envelope struct {
	Meta models.Meta     `json:"meta"`
	Data json.RawMessage `json:"data"`
}

// List decodes an envelope body into a validated record slice. Every element
// must conform to the record schema; the first failure rejects the whole
// response. Returns the envelope metadata alongside the records.
func List[T any, P recordPtr[T]](body []byte) ([]T, models.Meta, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, models.Meta{}, shapeErr(err)
	}

	if env.Data == nil {
		// An envelope without data is an empty result, not an error,
		// as long as the controller did not flag one.
		return nil, env.Meta, nil
	}

	var records []T
	if err := json.Unmarshal(env.Data, &records); err != nil {
		return nil, env.Meta, shapeErr(err)
	}

	for i := range records {
		if err := P(&records[i]).Validate(); err != nil {
			return nil, env.Meta, errors.Wrap(err, "response record rejected")
		}
	}

	if env.Meta.Count != nil && *env.Meta.Count != len(records) {
		return nil, env.Meta, errors.Wrap(
			&models.ValidationError{Field: "meta.count", Reason: "does not match data length"},
			"response record rejected")
	}

	return records, env.Meta, nil
}

// One decodes a body holding a single record: a bare object, or an envelope
// whose data list has exactly one element.
func One[T any, P recordPtr[T]](body []byte) (*T, models.Meta, error) {
	var probe struct {
		Data json.RawMessage `json:"data"`
	}
	// Ignore the probe error: a non-object body fails properly below.
	_ = json.Unmarshal(body, &probe)

	if probe.Data != nil {
		records, meta, err := List[T, P](body)
		if err != nil {
			return nil, meta, err
		}
		if len(records) == 0 {
			return nil, meta, errors.Wrap(
				&models.ValidationError{Field: "data", Reason: "expected one record, got none"},
				"response record rejected")
		}
		return &records[0], meta, nil
	}

	var record T
	if err := json.Unmarshal(body, &record); err != nil {
		return nil, models.Meta{}, shapeErr(err)
	}
	if err := P(&record).Validate(); err != nil {
		return nil, models.Meta{}, errors.Wrap(err, "response record rejected")
	}
	return &record, models.Meta{}, nil
}

// Meta decodes only the envelope metadata, for command endpoints whose data
// payload carries nothing the caller needs.
func Meta(body []byte) (models.Meta, error) {
	if len(body) == 0 {
		return models.Meta{}, nil
	}
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return models.Meta{}, shapeErr(err)
	}
	return env.Meta, nil
}

func shapeErr(err error) error {
	return errors.Wrap(
		&models.ValidationError{Field: "body", Reason: "not valid JSON for the expected schema"},
		err.Error())
}
