package client

import (
	"fmt"

	"github.com/pkg/errors"
)

// FailureKind tells which step of a fetch failed.
type FailureKind uint

const (
	FailureResolve FailureKind = iota + 1
	FailureConnect
	FailureSend
	FailureReceive
)

func (k FailureKind) String() string {
	switch k {
	case FailureResolve:
		return "resolve"
	case FailureConnect:
		return "connect"
	case FailureSend:
		return "send"
	case FailureReceive:
		return "receive"
	default:
		return fmt.Sprintf("unknown failure %d", k)
	}
}

// Error is returned by [Client.Fetch] for every failure.
type Error struct {
	Kind FailureKind
	Addr string // host:port as requested.

	cause error
}

func newError(kind FailureKind, addr string, cause error) *Error {
	return &Error{Kind: kind, Addr: addr, cause: cause}
}

func (e *Error) Error() string {
	if e.cause == nil {
		return fmt.Sprintf("%s %s failed", e.Kind, e.Addr)
	}
	return fmt.Sprintf("%s %s failed: %v", e.Kind, e.Addr, e.cause)
}

func (e *Error) Unwrap() error { return e.cause }
func (e *Error) Cause() error  { return e.cause }

// IsFailure reports whether err is an [*Error] of the given kind.
func IsFailure(err error, kind FailureKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
