// Package convert maps between the management wire messages and the vpn
// domain model.
//
// Conversions never guess: an unset variant or an unknown enum value is an
// error, and an absent optional field becomes nil. The only defaults are the
// ones the wire format defines itself.
package convert

import (
	"fmt"

	rpcerrors "github.com/gezibash/mullvad-rpc/pkg/errors"
)

// Error describes a message that could not be converted.
type Error struct {
	// Field is the dotted path of the offending field.
	Field  string
	Reason string
	kind   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v: %s: %s", e.kind, e.Field, e.Reason)
}

// Unwrap returns ErrInvalidResponse for wire to domain conversions and
// ErrInvalidInput for domain to wire conversions.
func (e *Error) Unwrap() error { return e.kind }

func missing(field string) error {
	return &Error{Field: field, Reason: "missing", kind: rpcerrors.ErrInvalidResponse}
}

func invalid(field, format string, args ...any) error {
	return &Error{Field: field, Reason: fmt.Sprintf(format, args...), kind: rpcerrors.ErrInvalidResponse}
}

func invalidInput(field, format string, args ...any) error {
	return &Error{Field: field, Reason: fmt.Sprintf(format, args...), kind: rpcerrors.ErrInvalidInput}
}

// enum looks up v in m and reports an unknown or unset value as invalid.
func enum[W ~int32, D any](field string, m map[W]D, v W) (D, error) {
	d, ok := m[v]
	if !ok {
		var zero D
		if v == 0 {
			return zero, invalid(field, "unset")
		}
		return zero, invalid(field, "unknown value %d", int32(v))
	}
	return d, nil
}

// reverse inverts a conversion table for the domain to wire direction.
func reverse[W comparable, D comparable](m map[W]D) map[D]W {
	out := make(map[D]W, len(m))
	for w, d := range m {
		out[d] = w
	}
	return out
}

func toWire[D comparable, W any](field string, m map[D]W, v D) (W, error) {
	w, ok := m[v]
	if !ok {
		var zero W
		return zero, invalidInput(field, "unknown value %v", v)
	}
	return w, nil
}

func join(parent, child string) string {
	if parent == "" {
		return child
	}
	return parent + "." + child
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneUint32(v *uint32) *uint32 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
