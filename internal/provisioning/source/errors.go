package source

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"mockdata/internal/dataset"
	"mockdata/pkg/platform/sentinel"
)

// Category is the normalized reason an attempt failed.
type Category string

const (
	// CategoryNotFound: the path, asset or key does not exist.
	CategoryNotFound Category = "not_found"

	// CategoryBadStatus: the endpoint answered with a non-2xx status.
	CategoryBadStatus Category = "bad_status"

	// CategoryTimeout: the attempt ran past its deadline.
	CategoryTimeout Category = "timeout"

	// CategoryBadData: the source returned something that is not JSON.
	CategoryBadData Category = "bad_data"

	// CategorySchemaViolation: the data parsed but does not match the contract.
	CategorySchemaViolation Category = "schema_violation"

	// CategoryUnavailable: the backend could not be reached.
	CategoryUnavailable Category = "unavailable"

	// CategoryInternal: anything else.
	CategoryInternal Category = "internal"
)

// AttemptFailed records why one attempt did not produce a payload.
type AttemptFailed struct {
	Attempt  string
	Kind     Kind
	Category Category
	Err      error
}

func (e *AttemptFailed) Error() string {
	return fmt.Sprintf("attempt %s [%s]: %v", e.Attempt, e.Category, e.Err)
}

func (e *AttemptFailed) Unwrap() error {
	return e.Err
}

func newAttemptFailed(a Attempt, err error) *AttemptFailed {
	return &AttemptFailed{
		Attempt:  a.Name(),
		Kind:     a.Kind(),
		Category: Categorize(err),
		Err:      err,
	}
}

// SourceExhausted is returned when every attempt of a strategy failed. Failures
// holds one entry per attempt, in the order the attempts ran.
type SourceExhausted struct {
	Environment Environment
	Failures    []*AttemptFailed
}

func (e *SourceExhausted) Error() string {
	reasons := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		reasons = append(reasons, f.Error())
	}
	return fmt.Sprintf("source exhausted for %s environment after %d attempts: %s",
		e.Environment, len(e.Failures), strings.Join(reasons, "; "))
}

// Unwrap exposes every attempt failure to errors.Is and errors.As.
func (e *SourceExhausted) Unwrap() []error {
	errs := make([]error, 0, len(e.Failures))
	for _, f := range e.Failures {
		errs = append(errs, f)
	}
	return errs
}

// StatusError is a non-2xx answer from a network source.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

// Categorize maps an attempt error onto the failure taxonomy.
func Categorize(err error) Category {
	var af *AttemptFailed
	if errors.As(err, &af) {
		return af.Category
	}
	var sv *dataset.SchemaViolation
	if errors.As(err, &sv) {
		return CategorySchemaViolation
	}
	var se *StatusError
	if errors.As(err, &se) {
		return CategoryBadStatus
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return CategoryTimeout
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return CategoryTimeout
	}
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		return CategoryNotFound
	case errors.Is(err, dataset.ErrMalformed):
		return CategoryBadData
	case errors.Is(err, sentinel.ErrUnavailable):
		return CategoryUnavailable
	}
	return CategoryInternal
}

// ErrNoAttempts is returned when a strategy would have nothing to try.
var ErrNoAttempts = errors.New("strategy has no attempts")
