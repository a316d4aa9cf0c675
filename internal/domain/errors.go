package domain

import (
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/url"
)

// Kind classifies every failure the aquarium can report to a caller.
type Kind int

const (
	// KindExternalRequest covers transport failures talking to the instance.
	KindExternalRequest Kind = iota + 1
	// KindConfiguration covers missing settings and unbuildable requests.
	KindConfiguration
	// KindParsing covers activity payloads that cannot be decoded.
	KindParsing
)

// Sentinels for errors.Is.
const (
	ErrExternalRequest = KindExternalRequest
	ErrConfiguration   = KindConfiguration
	ErrParsing         = KindParsing
)

// Error returns the static, client-safe message for the kind.
func (k Kind) Error() string {
	switch k {
	case KindExternalRequest:
		return "Failed reading data from external source"
	case KindParsing:
		return "Failed parsing data from external source"
	case KindConfiguration:
		return "Configuration error"
	default:
		return "Unknown error"
	}
}

// String returns a short label suitable for logs and metric labels.
func (k Kind) String() string {
	switch k {
	case KindExternalRequest:
		return "external_request"
	case KindParsing:
		return "parsing"
	case KindConfiguration:
		return "configuration"
	default:
		return "unknown"
	}
}

// Error tags an underlying failure with its Kind at the point where it happened.
// Its message is the kind's message only; the cause stays reachable through Unwrap.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

// Wrap tags err with kind. A nil err still yields a tagged error.
func Wrap(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

func (e *Error) Error() string { return e.Kind.Error() }

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}

// Cause renders the operation and wrapped error for diagnostics.
func (e *Error) Cause() string {
	if e.Err == nil {
		return e.Op
	}
	if e.Op == "" {
		return e.Err.Error()
	}
	return e.Op + ": " + e.Err.Error()
}

// KindOf returns the kind carried by err, or zero when err is not tagged.
func KindOf(err error) Kind {
	var tagged *Error
	if errors.As(err, &tagged) {
		return tagged.Kind
	}
	var k Kind
	if errors.As(err, &k) {
		return k
	}
	return 0
}

// Classify converts an arbitrary error into a tagged one. Rules are applied in
// order and the first match wins.
func Classify(op string, err error) *Error {
	if err == nil {
		return nil
	}
	var tagged *Error
	if errors.As(err, &tagged) {
		return tagged
	}
	if k := KindOf(err); k != 0 {
		return Wrap(k, op, err)
	}
	var (
		urlErr    *url.Error
		netErr    net.Error
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)
	switch {
	case errors.As(err, &urlErr), errors.As(err, &netErr):
		return Wrap(KindExternalRequest, op, err)
	case errors.As(err, &syntaxErr), errors.As(err, &typeErr), errors.Is(err, io.ErrUnexpectedEOF):
		return Wrap(KindParsing, op, err)
	default:
		return Wrap(KindExternalRequest, op, err)
	}
}
