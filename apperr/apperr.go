// Package apperr defines the error vocabulary shared by the registry core.
// The transport layer maps each kind to an HTTP status via Status.
package apperr

import (
	"errors"
	"net/http"
	"sort"
	"strings"
)

type Kind int

const (
	KindUnknown Kind = iota
	KindForbidden
	KindNotFound
	KindMalformed
	KindConflict
	KindValidation
)

// Error is a core error: a kind plus, for field-level rejections, a map of
// field name to reason.
type Error struct {
	Kind    Kind
	Message string
	Fields  map[string]string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if len(e.Fields) > 0 {
		keys := make([]string, 0, len(e.Fields))
		for k := range e.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, k+": "+e.Fields[k])
		}
		return strings.Join(parts, "; ")
	}
	return "request failed"
}

// Forbidden means the principal is authenticated but not allowed.
func Forbidden(msg string) error {
	return &Error{Kind: KindForbidden, Message: msg}
}

func NotFound(msg string) error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// Malformed means a required request parameter is missing or untyped.
func Malformed(msg string) error {
	return &Error{Kind: KindMalformed, Message: msg}
}

// Conflict means a uniqueness rule was violated on the named field.
func Conflict(field, reason string) error {
	return &Error{Kind: KindConflict, Fields: map[string]string{field: reason}}
}

// Validation is a field-keyed business-rule rejection.
func Validation(field, reason string) error {
	return &Error{Kind: KindValidation, Fields: map[string]string{field: reason}}
}

// KindOf returns the kind of err, or KindUnknown for foreign errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// FieldsOf returns the field-keyed reasons carried by err, if any.
func FieldsOf(err error) map[string]string {
	var e *Error
	if errors.As(err, &e) {
		return e.Fields
	}
	return nil
}

// Status maps an error to the HTTP status the transport layer should send.
func Status(err error) int {
	switch KindOf(err) {
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindMalformed, KindValidation:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
