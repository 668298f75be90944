package models

import (
	"context"
	"errors"
	"net"
)

// Sentinel errors for the country data pipeline.
var (
	// ErrTimeout is returned when the catalog request exceeds its deadline.
	ErrTimeout = errors.New("request timed out")

	// ErrTransport is returned for network failures and non-success HTTP status codes.
	ErrTransport = errors.New("transport failure")

	// ErrUnexpected is returned for malformed or incomplete response payloads.
	ErrUnexpected = errors.New("unexpected failure")

	// ErrInvalidCountry is returned when a record violates the Country invariants.
	ErrInvalidCountry = errors.New("invalid country record")

	// ErrSelectionNotFound is returned when a display row does not map to a country.
	ErrSelectionNotFound = errors.New("selection not found")
)

// LoadErrorKind identifies which failure class a load error belongs to.
type LoadErrorKind int

const (
	LoadErrorNone LoadErrorKind = iota
	LoadErrorTimeout
	LoadErrorTransport
	LoadErrorUnexpected
)

func (k LoadErrorKind) String() string {
	switch k {
	case LoadErrorNone:
		return "none"
	case LoadErrorTimeout:
		return "timeout"
	case LoadErrorTransport:
		return "transport"
	case LoadErrorUnexpected:
		return "unexpected"
	default:
		return "unknown"
	}
}

// ClassifyLoadError maps an error onto a LoadErrorKind. Wrapped sentinels win;
// raw deadline and net errors are recognised so callers outside the loader get
// the same answer.
func ClassifyLoadError(err error) LoadErrorKind {
	if err == nil {
		return LoadErrorNone
	}
	if errors.Is(err, ErrTimeout) || errors.Is(err, context.DeadlineExceeded) {
		return LoadErrorTimeout
	}
	if errors.Is(err, ErrTransport) {
		return LoadErrorTransport
	}
	if errors.Is(err, ErrUnexpected) {
		return LoadErrorUnexpected
	}

	var nerr net.Error
	if errors.As(err, &nerr) {
		if nerr.Timeout() {
			return LoadErrorTimeout
		}
		return LoadErrorTransport
	}
	return LoadErrorUnexpected
}
