// Package domainerrors carries the coded error taxonomy shared by the
// resolution pipeline and the HTTP layer. Codes double as the wire-level
// `error` field of failure responses.
package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
)

type Code string

const (
	// CodeMissingID: the identifier path segment was empty.
	CodeMissingID Code = "missing_id"
	// CodeInvalidID: the identifier did not normalize to <country><digits>.
	CodeInvalidID Code = "invalid_id"
	// CodeNotFound: the registry has no company for the id.
	CodeNotFound Code = "no_results"
	// CodeUpstreamDown: transport or timeout failure talking to the registry.
	CodeUpstreamDown Code = "upstream_down"
	// CodeDataIntegrity: the upstream answer contradicts itself (ambiguous
	// match, wrong company returned).
	CodeDataIntegrity Code = "data_integrity"
	// CodeUnknownStatus: a status code missing from the translation table.
	CodeUnknownStatus Code = "unknown_status"
	// CodeMalformedTemporal: a versioned item without a validity period, or a
	// coded interval that does not parse.
	CodeMalformedTemporal Code = "malformed_temporal_data"
	// CodeMissingField: a field the public schema requires is absent upstream.
	CodeMissingField Code = "missing_required_field"
	CodeInternal     Code = "internal"
)

// DomainError is the error type every layer of the service speaks.
type DomainError struct {
	Code    Code
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

func New(code Code, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}

func Newf(code Code, format string, args ...any) *DomainError {
	return &DomainError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap annotates err with a code while keeping it unwrappable.
func Wrap(err error, code Code, message string) *DomainError {
	return &DomainError{Code: code, Message: message, Err: err}
}

// HasCode reports whether err (or anything it wraps) carries the given code.
func HasCode(err error, code Code) bool {
	return CodeOf(err) == code
}

// CodeOf extracts the code from err, defaulting to CodeInternal for errors
// that did not originate in this service.
func CodeOf(err error) Code {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// ToHTTPStatus maps a code to the response status the thin HTTP layer emits.
// Data-integrity class failures surface as gateway timeouts: the caller cannot
// distinguish a broken upstream record from an unreachable upstream.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeMissingID, CodeInvalidID:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeUpstreamDown, CodeDataIntegrity, CodeUnknownStatus, CodeMalformedTemporal, CodeMissingField:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
