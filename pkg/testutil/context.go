package testutil

import (
	"net/http"

	"mockdata/pkg/requestcontext"
)

// WithRequestID attaches a request ID the way the RequestID middleware would,
// for handlers exercised without the full middleware chain.
func WithRequestID(req *http.Request, requestID string) *http.Request {
	return req.WithContext(requestcontext.WithRequestID(req.Context(), requestID))
}
