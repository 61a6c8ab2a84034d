package render_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pwpush/pwpush-cli/internal/api/pushapi"
	"github.com/pwpush/pwpush-cli/internal/cli/output"
	"github.com/pwpush/pwpush-cli/internal/cli/render"
)

func TestModeFromJSON(t *testing.T) {
	t.Parallel()

	assert.Equal(t, render.ModeJSON, render.ModeFromJSON(true))
	assert.Equal(t, render.ModeHuman, render.ModeFromJSON(false))
}

func TestRenderer_Success_JSON(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	r := &render.Renderer{Mode: render.ModeJSON, Stdout: &stdout, Stderr: &stderr}

	payload := struct {
		URLToken string `json:"url_token"`
	}{URLToken: "abc123"}

	err := r.Success(payload, func(_ io.Writer) error {
		t.Fatal("human callback must not run in JSON mode")
		return nil
	})
	require.NoError(t, err)

	// Output must round-trip as structured data.
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &decoded))
	assert.Equal(t, "abc123", decoded["url_token"])
	assert.Empty(t, stderr.String())
}

func TestRenderer_Success_Human(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	r := &render.Renderer{Mode: render.ModeHuman, Stdout: &stdout}

	err := r.Success(nil, func(w io.Writer) error {
		output.Success(w, "Pushed text secret: %s", "https://pwpush.com/p/abc123")
		return nil
	})
	require.NoError(t, err)

	assert.Contains(t, stdout.String(), "https://pwpush.com/p/abc123")
	// Human mode carries no JSON framing.
	assert.NotContains(t, stdout.String(), "{")
	assert.NotContains(t, stdout.String(), `"`)
}

func TestRenderer_Failure_JSON(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	r := &render.Renderer{Mode: render.ModeJSON, Stdout: &stdout}

	srcErr := &pushapi.RemoteError{StatusCode: http.StatusNotFound, Message: "not-found"}
	err := r.Failure(srcErr)
	require.ErrorIs(t, err, srcErr)

	var decoded struct {
		Error  string `json:"error"`
		Status int    `json:"status"`
	}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &decoded))
	assert.Equal(t, http.StatusNotFound, decoded.Status)
	assert.Contains(t, decoded.Error, "404")
}

func TestRenderer_Failure_Human(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	r := &render.Renderer{Mode: render.ModeHuman, Stdout: &stdout}

	srcErr := &pushapi.RemoteError{StatusCode: http.StatusNotFound}
	err := r.Failure(srcErr)
	require.ErrorIs(t, err, srcErr)

	// Human-mode errors go to stderr via main; stdout stays clean.
	assert.Empty(t, stdout.String())
}
