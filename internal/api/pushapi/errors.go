package pushapi

import (
	"fmt"
	"net/http"
)

// RemoteError reports a non-success HTTP status from the service.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("service returned %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("service returned %d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.Message)
}

// TransportError reports a failure to reach the service at all.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
