// Package policy enforces field-level access rules on update payloads.
// Each updatable resource declares a field policy; ValidateUpdate checks an
// incoming JSON document against it before the patch is applied.
package policy

import (
	"net/http"

	"github.com/tidwall/gjson"

	"github.com/switchscope/switchscope/internal/common/apperrors"
)

var (
	// ErrPolicyViolation indicates the payload writes a field the caller's
	// role may not write, or clears a field that must stay set.
	ErrPolicyViolation apperrors.Error = apperrors.New("field access policy violation").SetStatusCode(http.StatusForbidden)
)

// AccessLevel classifies how a field may be written in an update payload.
type AccessLevel int

const (
	// Required fields must always carry a value; an explicit null is
	// rejected for every role.
	Required AccessLevel = iota
	// AdminNullable fields may be cleared with an explicit null by an
	// administrator only. Any role may set a value.
	AdminNullable
	// UserWritable fields may be set or cleared by any role.
	UserWritable
	// ReadOnly fields are server-owned. They are silently dropped from the
	// patch rather than rejected, so clients may echo full documents back.
	ReadOnly
)

// FieldPolicy maps JSON field names to their access level. Fields absent
// from the policy are treated as read-only.
type FieldPolicy map[string]AccessLevel

// ValidateUpdate checks an update document against the policy. An explicit
// JSON null counts as clearing the field; absent fields are untouched and
// never checked.
func ValidateUpdate(p FieldPolicy, body []byte, isAdmin bool) apperrors.Error {
	if !gjson.ValidBytes(body) {
		return ErrPolicyViolation.Msg("request body is not valid JSON").SetStatusCode(http.StatusBadRequest)
	}

	var violation apperrors.Error
	gjson.ParseBytes(body).ForEach(func(key, value gjson.Result) bool {
		level, known := p[key.String()]
		if !known || level == ReadOnly {
			return true
		}
		if value.Type != gjson.Null {
			return true
		}
		switch level {
		case Required:
			violation = ErrPolicyViolation.Msg("field " + key.String() + " cannot be cleared").
				SetStatusCode(http.StatusBadRequest)
			return false
		case AdminNullable:
			if !isAdmin {
				violation = ErrPolicyViolation.Msg("only an administrator can clear field " + key.String())
				return false
			}
		}
		return true
	})
	return violation
}

// WritableFields returns the payload's field names the caller may apply,
// dropping read-only and unknown fields.
func WritableFields(p FieldPolicy, body []byte) []string {
	var out []string
	gjson.ParseBytes(body).ForEach(func(key, value gjson.Result) bool {
		if level, known := p[key.String()]; known && level != ReadOnly {
			out = append(out, key.String())
		}
		return true
	})
	return out
}
