// Package errors defines the error kinds surfaced by go-drivefolder.
//
// Every error returned by the library wraps exactly one of the sentinel
// kinds below, so callers can branch on errors.Is without inspecting
// transport details.
package errors

import (
	"context"
	"errors"
	"net"

	"google.golang.org/api/googleapi"
)

var (
	// ErrUnauthorized means the credential is invalid or expired. Not
	// recoverable by this library.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound means the target id does not exist remotely.
	ErrNotFound = errors.New("not found")
	// ErrRateLimited means the service rejected the call due to quota or
	// rate limits. The caller may retry later.
	ErrRateLimited = errors.New("rate limited")
	// ErrTransient covers server-side and transport failures that a
	// caller may retry.
	ErrTransient = errors.New("transient error")
	// ErrPermanent covers malformed requests and other failures that
	// retrying will not fix.
	ErrPermanent = errors.New("permanent error")
	// ErrExhaustedRetries means a paginated enumeration exceeded its
	// page-fetch budget without terminating.
	ErrExhaustedRetries = errors.New("exhausted retries")
	// ErrIOError covers local read failures while preparing an upload.
	ErrIOError = errors.New("io error")
)

type wrapError struct {
	underlying error
	msg        string
	cause      error
}

var _ error = (*wrapError)(nil)

// New wraps cause with the given kind and message.
func New(kind error, msg string, cause error) error {
	return &wrapError{
		underlying: kind,
		msg:        msg,
		cause:      cause,
	}
}

// NewIOError wraps a local I/O failure.
func NewIOError(msg string, cause error) error {
	return &wrapError{
		underlying: ErrIOError,
		msg:        msg,
		cause:      cause,
	}
}

// Classify wraps a Google API call failure with the error kind derived
// from its HTTP status. Transport-level failures (timeouts, connection
// resets, cancelled contexts) classify as transient.
func Classify(msg string, cause error) error {
	return &wrapError{
		underlying: kindOf(cause),
		msg:        msg,
		cause:      cause,
	}
}

func kindOf(cause error) error {
	var gErr *googleapi.Error
	if errors.As(cause, &gErr) {
		switch {
		case gErr.Code == 401:
			return ErrUnauthorized
		case gErr.Code == 404:
			return ErrNotFound
		case gErr.Code == 429, gErr.Code == 403 && rateLimitReason(gErr):
			return ErrRateLimited
		case gErr.Code >= 500:
			return ErrTransient
		default:
			return ErrPermanent
		}
	}
	var netErr net.Error
	if errors.As(cause, &netErr) ||
		errors.Is(cause, context.DeadlineExceeded) ||
		errors.Is(cause, context.Canceled) {
		return ErrTransient
	}
	return ErrPermanent
}

func rateLimitReason(gErr *googleapi.Error) bool {
	for _, e := range gErr.Errors {
		switch e.Reason {
		case "rateLimitExceeded", "userRateLimitExceeded", "dailyLimitExceeded":
			return true
		}
	}
	return false
}

func (err *wrapError) Error() string {
	if err == nil {
		return "(*wrapError)(nil)"
	}
	message := err.underlying.Error() + ": " + err.msg
	if err.cause != nil {
		message += ": " + err.cause.Error()
	}
	return message
}

func (err *wrapError) Unwrap() []error {
	if err.cause == nil {
		return []error{err.underlying}
	}
	return []error{err.underlying, err.cause}
}
