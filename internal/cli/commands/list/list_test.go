package list_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pwpush/pwpush-cli/internal/api/pushapi"
	"github.com/pwpush/pwpush-cli/internal/cli/commands/list"
	"github.com/pwpush/pwpush-cli/internal/cli/render"
	"github.com/pwpush/pwpush-cli/internal/model"
	usecase "github.com/pwpush/pwpush-cli/internal/usecase/push"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	m.Run()
}

type mockClient struct {
	listPushesFunc func(ctx context.Context, kind model.Kind, expired bool) ([]pushapi.Push, error)
}

func (m *mockClient) ListPushes(ctx context.Context, kind model.Kind, expired bool) ([]pushapi.Push, error) {
	return m.listPushesFunc(ctx, kind, expired)
}

func TestRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opts    list.Options
		mock    *mockClient
		json    bool
		wantErr bool
		check   func(t *testing.T, stdout string)
	}{
		{
			name: "active pushes by default",
			opts: list.Options{Kind: model.KindText, Scope: usecase.ScopeActive},
			mock: &mockClient{
				listPushesFunc: func(_ context.Context, kind model.Kind, expired bool) ([]pushapi.Push, error) {
					assert.Equal(t, model.KindText, kind)
					assert.False(t, expired)
					return []pushapi.Push{
						{URLToken: "abc123", Note: "prod db", DaysRemaining: 5, ViewsRemaining: 3},
						{URLToken: "def456", DaysRemaining: 1, ViewsRemaining: 1},
					}, nil
				},
			},
			check: func(t *testing.T, stdout string) {
				assert.Contains(t, stdout, "abc123")
				assert.Contains(t, stdout, "prod db")
				assert.Contains(t, stdout, "(5 days / 3 views left)")
				assert.Contains(t, stdout, "def456")
			},
		},
		{
			name: "expired pushes",
			opts: list.Options{Kind: model.KindText, Scope: usecase.ScopeExpired},
			mock: &mockClient{
				listPushesFunc: func(_ context.Context, _ model.Kind, expired bool) ([]pushapi.Push, error) {
					assert.True(t, expired)
					return []pushapi.Push{{URLToken: "old123", Expired: true}}, nil
				},
			},
			check: func(t *testing.T, stdout string) {
				assert.Contains(t, stdout, "expired")
				assert.Contains(t, stdout, "old123")
			},
		},
		{
			name: "all pushes includes both groups",
			opts: list.Options{Kind: model.KindFile, Scope: usecase.ScopeAll},
			mock: &mockClient{
				listPushesFunc: func(_ context.Context, _ model.Kind, expired bool) ([]pushapi.Push, error) {
					if expired {
						return []pushapi.Push{{URLToken: "old123", Expired: true}}, nil
					}
					return []pushapi.Push{{URLToken: "new123"}}, nil
				},
			},
			check: func(t *testing.T, stdout string) {
				assert.Contains(t, stdout, "new123")
				assert.Contains(t, stdout, "old123")
			},
		},
		{
			name: "no pushes",
			opts: list.Options{Kind: model.KindText, Scope: usecase.ScopeActive},
			mock: &mockClient{
				listPushesFunc: func(_ context.Context, _ model.Kind, _ bool) ([]pushapi.Push, error) {
					return nil, nil
				},
			},
			check: func(t *testing.T, stdout string) {
				assert.Contains(t, stdout, "No pushes found.")
			},
		},
		{
			name: "JSON output",
			opts: list.Options{Kind: model.KindText, Scope: usecase.ScopeActive},
			json: true,
			mock: &mockClient{
				listPushesFunc: func(_ context.Context, _ model.Kind, _ bool) ([]pushapi.Push, error) {
					return []pushapi.Push{{URLToken: "abc123"}}, nil
				},
			},
			check: func(t *testing.T, stdout string) {
				var result usecase.ListOutput
				require.NoError(t, json.Unmarshal([]byte(stdout), &result))
				require.Len(t, result.Active, 1)
				assert.Equal(t, "abc123", result.Active[0].URLToken)
			},
		},
		{
			name: "unauthenticated",
			opts: list.Options{Kind: model.KindText, Scope: usecase.ScopeActive},
			mock: &mockClient{
				listPushesFunc: func(_ context.Context, _ model.Kind, _ bool) ([]pushapi.Push, error) {
					return nil, &pushapi.RemoteError{StatusCode: 401, Message: "unauthorized"}
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var stdout, stderr bytes.Buffer
			r := &list.Runner{
				UseCase: &usecase.ListUseCase{Client: tt.mock},
				Renderer: &render.Renderer{
					Mode:   render.ModeFromJSON(tt.json),
					Stdout: &stdout,
					Stderr: &stderr,
				},
			}

			err := r.Run(context.Background(), tt.opts)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			if tt.check != nil {
				tt.check(t, stdout.String())
			}
		})
	}
}
