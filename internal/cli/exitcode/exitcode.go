// Package exitcode maps errors to process exit codes. Usage errors and
// remote operation failures get distinct codes so scripts can tell them
// apart.
package exitcode

import (
	"errors"

	"github.com/pwpush/pwpush-cli/internal/api/pushapi"
)

// Process exit codes.
const (
	OK = 0
	// Failure indicates the remote operation failed (non-success status
	// or unreachable instance).
	Failure = 1
	// Usage indicates an invalid invocation or configuration.
	Usage = 2
)

// FromError returns the exit code for err.
func FromError(err error) int {
	if err == nil {
		return OK
	}

	var remoteErr *pushapi.RemoteError
	if errors.As(err, &remoteErr) {
		return Failure
	}

	var transportErr *pushapi.TransportError
	if errors.As(err, &transportErr) {
		return Failure
	}

	return Usage
}
