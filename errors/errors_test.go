package errors_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"google.golang.org/api/googleapi"

	. "github.com/okineko/go-drivefolder/errors"
)

func TestErrVars_IsAndMessage(t *testing.T) {
	cases := []struct {
		name string
		err  error
		msg  string
	}{
		{"ErrUnauthorized", ErrUnauthorized, "unauthorized"},
		{"ErrNotFound", ErrNotFound, "not found"},
		{"ErrRateLimited", ErrRateLimited, "rate limited"},
		{"ErrTransient", ErrTransient, "transient error"},
		{"ErrPermanent", ErrPermanent, "permanent error"},
		{"ErrExhaustedRetries", ErrExhaustedRetries, "exhausted retries"},
		{"ErrIOError", ErrIOError, "io error"},
		{"ErrIOError2", NewIOError("", fmt.Errorf("")), "io error"},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name+"/IsWrapped", func(t *testing.T) {
			wrapped := fmt.Errorf("higher: %w", c.err)
			if !errors.Is(wrapped, c.err) {
				t.Fatalf("errors.Is(wrapped, %s) = false, want true", c.name)
			}
		})

		t.Run(c.name+"/Message", func(t *testing.T) {
			wrapped := fmt.Errorf("higher: %w", c.err)
			if !strings.Contains(wrapped.Error(), c.msg) {
				t.Fatalf("%s.Error() = %q does not contain %q", c.name, wrapped.Error(), c.msg)
			}
		})
	}
}

func TestClassify_StatusCodes(t *testing.T) {
	cases := []struct {
		name  string
		cause error
		want  error
	}{
		{"401", &googleapi.Error{Code: 401}, ErrUnauthorized},
		{"404", &googleapi.Error{Code: 404}, ErrNotFound},
		{"429", &googleapi.Error{Code: 429}, ErrRateLimited},
		{"403RateReason", &googleapi.Error{
			Code:   403,
			Errors: []googleapi.ErrorItem{{Reason: "userRateLimitExceeded"}},
		}, ErrRateLimited},
		{"403Other", &googleapi.Error{Code: 403}, ErrPermanent},
		{"500", &googleapi.Error{Code: 500}, ErrTransient},
		{"503", &googleapi.Error{Code: 503}, ErrTransient},
		{"400", &googleapi.Error{Code: 400}, ErrPermanent},
		{"PlainError", fmt.Errorf("boom"), ErrPermanent},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			err := Classify("call failed", c.cause)
			if !errors.Is(err, c.want) {
				t.Fatalf("Classify(%v) is not %v: %v", c.cause, c.want, err)
			}
			if !errors.Is(err, c.cause) {
				t.Fatalf("Classify(%v) does not wrap its cause: %v", c.cause, err)
			}
		})
	}
}

func TestClassify_WrappedCause(t *testing.T) {
	cause := fmt.Errorf("call: %w", &googleapi.Error{Code: 404})
	err := Classify("get failed", cause)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Classify(wrapped 404) is not ErrNotFound: %v", err)
	}
	if !strings.Contains(err.Error(), "get failed") {
		t.Fatalf("Classify message lost: %q", err.Error())
	}
}
