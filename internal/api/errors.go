package api

import (
	"errors"
	"fmt"
)

// Sentinels matched by errors.Is against a *FetchError.
var (
	// ErrTransport covers network failures, unreadable bodies and malformed JSON.
	ErrTransport = errors.New("transport error")
	// ErrHTTPStatus covers any non-2xx response.
	ErrHTTPStatus = errors.New("unexpected http status")
)

// Kind classifies a FetchError.
type Kind int

const (
	// KindTransport is a network, body or decoding failure.
	KindTransport Kind = iota
	// KindHTTPStatus is a non-2xx response.
	KindHTTPStatus
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindHTTPStatus:
		return "http_status"
	default:
		return "unknown"
	}
}

// Resource names used in FetchError.
const (
	ResourceParties     = "parties"
	ResourcePartyDetail = "party detail"
)

// FetchError is returned by every failing fetch.
type FetchError struct {
	Resource   string
	ID         int  // party id for detail fetches
	HasID      bool // ID is meaningful
	Kind       Kind
	StatusCode int // set for KindHTTPStatus
	Err        error
}

func (e *FetchError) Error() string {
	target := e.Resource
	if e.HasID {
		target = fmt.Sprintf("%s %d", e.Resource, e.ID)
	}
	if e.Kind == KindHTTPStatus {
		return fmt.Sprintf("failed to fetch %s: status %d", target, e.StatusCode)
	}
	return fmt.Sprintf("failed to fetch %s: %v", target, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is matches the kind sentinels.
func (e *FetchError) Is(target error) bool {
	switch target {
	case ErrTransport:
		return e.Kind == KindTransport
	case ErrHTTPStatus:
		return e.Kind == KindHTTPStatus
	default:
		return false
	}
}
