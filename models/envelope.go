package models

// Record is implemented by every API resource model. Validate reports the
// first field that fails the record's schema; records are only released to
// callers after Validate returns nil.
type Record interface {
	Validate() error
}

// Meta is the controller's response metadata block.
type Meta struct {
	RC        string `json:"rc,omitempty"`
	Msg       string `json:"msg,omitempty"`
	Count     *int   `json:"count,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// OK reports whether the controller marked the response as successful.
// An absent rc field counts as success; only an explicit "error" does not.
func (m Meta) OK() bool {
	return m.RC == "" || m.RC == "ok"
}

// Envelope wraps the controller's standard list response shape,
// {"data": [...], "meta": {...}}. All data elements conform to one record
// schema.
type Envelope[T Record] struct {
	Meta Meta `json:"meta"`
	Data []T  `json:"data"`
}

// Validate checks every data element against its record schema. The count
// declared in meta, when present, must match the number of elements.
func (e *Envelope[T]) Validate() error {
	if e.Meta.Count != nil && *e.Meta.Count != len(e.Data) {
		return fieldErr("meta.count", "does not match data length")
	}
	for _, rec := range e.Data {
		if err := rec.Validate(); err != nil {
			return err
		}
	}
	return nil
}
