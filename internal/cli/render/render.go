// Package render writes operation outcomes in human or JSON form.
//
// The mode is a two-variant choice selected once from the --json flag.
// JSON always goes to stdout with stable field names and nothing else,
// so it stays machine-parseable; human summaries may use color.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/pwpush/pwpush-cli/internal/api/pushapi"
)

// Mode selects between human-readable and machine-readable output.
type Mode int

// Output modes.
const (
	ModeHuman Mode = iota
	ModeJSON
)

// ModeFromJSON returns the mode selected by the --json flag.
func ModeFromJSON(jsonFlag bool) Mode {
	if jsonFlag {
		return ModeJSON
	}
	return ModeHuman
}

// Renderer writes outcomes for one command invocation.
type Renderer struct {
	Mode   Mode
	Stdout io.Writer
	Stderr io.Writer
}

// Success renders a successful outcome. In JSON mode the payload is
// encoded to stdout; in human mode the human callback writes the summary.
func (r *Renderer) Success(payload any, human func(w io.Writer) error) error {
	if r.Mode == ModeJSON {
		enc := json.NewEncoder(r.Stdout)
		if err := enc.Encode(payload); err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		return nil
	}
	return human(r.Stdout)
}

// failureBody is the stable JSON shape for failed outcomes.
type failureBody struct {
	Error  string `json:"error"`
	Status int    `json:"status,omitempty"`
}

// Failure renders a failed outcome and returns err unchanged so the
// caller can propagate it for exit-code handling. In JSON mode a
// structured error object goes to stdout; the human error line is
// printed by main on stderr in both modes.
func (r *Renderer) Failure(err error) error {
	if r.Mode == ModeJSON {
		body := failureBody{Error: err.Error()}

		var remoteErr *pushapi.RemoteError
		if errors.As(err, &remoteErr) {
			body.Status = remoteErr.StatusCode
		}

		_ = json.NewEncoder(r.Stdout).Encode(body)
	}
	return err
}
