package unifi

import (
	"context"
	"net/http"

	"github.com/cockroachdb/errors"

	"github.com/isminet/isminet/internal/response"
	"github.com/isminet/isminet/models"
)

// recordPtr constrains P to a pointer to T implementing models.Record.
type recordPtr[T any] interface {
	*T
	models.Record
}

// list performs a GET and decodes the envelope into a validated slice.
func list[T any, P recordPtr[T]](ctx context.Context, c *APIClient, path, opName string) ([]T, error) {
	body, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, errors.Wrap(err, opName)
	}

	records, meta, err := response.List[T, P](body)
	if err != nil {
		return nil, errors.Wrap(err, opName)
	}
	if !meta.OK() {
		return nil, errors.Wrap(&APIError{StatusCode: http.StatusOK, Msg: meta.Msg, Path: path}, opName)
	}

	return records, nil
}

// one performs a request expecting a single validated record back.
func one[T any, P recordPtr[T]](ctx context.Context, c *APIClient, method, path string, reqBody any, opName string) (*T, error) {
	body, err := c.do(ctx, method, path, reqBody)
	if err != nil {
		return nil, errors.Wrap(err, opName)
	}

	record, meta, err := response.One[T, P](body)
	if err != nil {
		return nil, errors.Wrap(err, opName)
	}
	if !meta.OK() {
		return nil, errors.Wrap(&APIError{StatusCode: http.StatusOK, Msg: meta.Msg, Path: path}, opName)
	}

	return record, nil
}

// command performs a request whose response payload carries nothing the
// caller needs; only the envelope metadata is checked.
func command(ctx context.Context, c *APIClient, method, path string, reqBody any, opName string) error {
	body, err := c.do(ctx, method, path, reqBody)
	if err != nil {
		return errors.Wrap(err, opName)
	}

	meta, err := response.Meta(body)
	if err != nil {
		return errors.Wrap(err, opName)
	}
	if !meta.OK() {
		return errors.Wrap(&APIError{StatusCode: http.StatusOK, Msg: meta.Msg, Path: path}, opName)
	}

	return nil
}
