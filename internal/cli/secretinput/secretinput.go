// Package secretinput reads secret material for pushes without echoing
// it on the terminal or leaving stray copies in memory.
package secretinput

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"

	"github.com/pwpush/pwpush-cli/internal/cli/terminal"
)

// Reader collects the push payload from an argument, a pipe, or a
// hidden TTY prompt, in that order of preference.
type Reader struct {
	Stdin  io.Reader
	Stderr io.Writer
}

// ReadPayload returns the payload wrapped in a secure Buffer. An empty
// arg falls back to stdin: piped input is read whole, a terminal gets a
// hidden prompt.
func (r *Reader) ReadPayload(arg string) (*Buffer, error) {
	if arg != "" {
		return NewBuffer([]byte(arg)), nil
	}

	if !terminal.IsTerminalReader(r.Stdin) {
		data, err := io.ReadAll(r.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read payload from stdin: %w", err)
		}
		data = bytes.TrimRight(data, "\r\n")
		if len(data) == 0 {
			return nil, fmt.Errorf("empty payload on stdin")
		}
		return NewBuffer(data), nil
	}

	data, err := r.promptHidden("Enter secret payload: ")
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("empty payload")
	}
	return NewBuffer(data), nil
}

// ReadPassphrase prompts for the passphrase recipients must enter before
// viewing the push.
func (r *Reader) ReadPassphrase() (string, error) {
	data, err := r.promptHidden("Enter passphrase: ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// promptHidden reads one line with echo disabled when stdin is a TTY.
// Non-TTY input (tests, scripts) falls back to a plain line read.
func (r *Reader) promptHidden(label string) ([]byte, error) {
	_, _ = fmt.Fprint(r.Stderr, label)
	defer func() { _, _ = fmt.Fprintln(r.Stderr) }()

	if f, ok := r.Stdin.(terminal.Fder); ok && terminal.IsTTY(f.Fd()) {
		data, err := term.ReadPassword(int(f.Fd()))
		if err != nil {
			return nil, fmt.Errorf("failed to read input: %w", err)
		}
		return data, nil
	}

	line, err := bufio.NewReader(r.Stdin).ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return []byte(strings.TrimRight(line, "\r\n")), nil
}
