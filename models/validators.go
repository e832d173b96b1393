// Package models defines validated records for UniFi Network API resources.
//
// Every record is parsed from an API response body and validated in full
// before it is handed to the caller. A payload that fails any field check is
// rejected as a whole; partially constructed records do not exist.
package models

import (
	"net"
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"
)

var (
	macPattern     = regexp.MustCompile(`^([0-9A-Fa-f]{2}[:-]){5}[0-9A-Fa-f]{2}$`)
	versionPattern = regexp.MustCompile(`^\d+\.\d+\.\d+$`)
)

// ValidationError describes a record field that failed validation.
// It is never retryable; a response that produces one has a valid transport
// but an invalid shape.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid " + e.Field + ": " + e.Reason
}

// IsValidationError reports whether err (or any error in its chain) is a
// record validation failure.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func fieldErr(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// NormalizeMAC validates a MAC address in colon- or hyphen-separated
// hexadecimal octets and returns it lowercased with colon separators.
func NormalizeMAC(field, v string) (string, error) {
	if !macPattern.MatchString(v) {
		return "", fieldErr(field, "not a MAC address in colon-separated hex octets")
	}
	return strings.ToLower(strings.ReplaceAll(v, "-", ":")), nil
}

func validateMAC(field string, v *string) error {
	if v == nil || *v == "" {
		return nil
	}
	mac, err := NormalizeMAC(field, *v)
	if err != nil {
		return err
	}
	*v = mac
	return nil
}

func requireMAC(field string, v *string) error {
	if v == nil || *v == "" {
		return fieldErr(field, "required")
	}
	return validateMAC(field, v)
}

func validateMACList(field string, vs []string) error {
	for i, v := range vs {
		mac, err := NormalizeMAC(field, v)
		if err != nil {
			return err
		}
		vs[i] = mac
	}
	return nil
}

// validateIP accepts IPv4 or IPv6 textual form.
func validateIP(field, v string) error {
	if v == "" {
		return nil
	}
	if net.ParseIP(v) == nil {
		return fieldErr(field, "not an IPv4 or IPv6 address")
	}
	return nil
}

func validateIPv4List(field string, vs []string) error {
	for _, v := range vs {
		ip := net.ParseIP(v)
		if ip == nil || ip.To4() == nil {
			return fieldErr(field, "not an IPv4 address")
		}
	}
	return nil
}

func validateIPv6List(field string, vs []string) error {
	for _, v := range vs {
		ip := net.ParseIP(v)
		if ip == nil || ip.To4() != nil {
			return fieldErr(field, "not an IPv6 address")
		}
	}
	return nil
}

// validateVersion checks firmware/controller version strings of the form
// x.y.z.
func validateVersion(field, v string) error {
	if v == "" {
		return nil
	}
	if !versionPattern.MatchString(v) {
		return fieldErr(field, "version must be in x.y.z form")
	}
	return nil
}

func requireVersion(field, v string) error {
	if v == "" {
		return fieldErr(field, "required")
	}
	return validateVersion(field, v)
}

type number interface {
	~int | ~int64 | ~float64
}

func inRange[N number](field string, v, lo, hi N) error {
	if v < lo || v > hi {
		return fieldErr(field, "out of range")
	}
	return nil
}

func inRangePtr[N number](field string, v *N, lo, hi N) error {
	if v == nil {
		return nil
	}
	return inRange(field, *v, lo, hi)
}

func atLeast[N number](field string, v, lo N) error {
	if v < lo {
		return fieldErr(field, "out of range")
	}
	return nil
}

func atLeastPtr[N number](field string, v *N, lo N) error {
	if v == nil {
		return nil
	}
	return atLeast(field, *v, lo)
}

func atMostPtr[N number](field string, v *N, hi N) error {
	if v != nil && *v > hi {
		return fieldErr(field, "out of range")
	}
	return nil
}

func requireString(field, v string) error {
	if v == "" {
		return fieldErr(field, "required")
	}
	return nil
}

// firstErr returns the first non-nil error, so record Validate methods can
// list their field checks once and stop at the first failure.
func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
