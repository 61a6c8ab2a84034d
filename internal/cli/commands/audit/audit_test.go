package audit_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pwpush/pwpush-cli/internal/api/pushapi"
	"github.com/pwpush/pwpush-cli/internal/cli/commands/audit"
	"github.com/pwpush/pwpush-cli/internal/cli/render"
	"github.com/pwpush/pwpush-cli/internal/model"
	usecase "github.com/pwpush/pwpush-cli/internal/usecase/push"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	m.Run()
}

type mockClient struct {
	auditPushFunc func(ctx context.Context, kind model.Kind, urlToken string) (*pushapi.AuditLog, error)
}

func (m *mockClient) AuditPush(ctx context.Context, kind model.Kind, urlToken string) (*pushapi.AuditLog, error) {
	return m.auditPushFunc(ctx, kind, urlToken)
}

func TestRun(t *testing.T) {
	t.Parallel()
	viewedAt := time.Date(2026, 8, 2, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		opts    audit.Options
		mock    *mockClient
		wantErr bool
		check   func(t *testing.T, stdout string)
	}{
		{
			name: "view log with entries",
			opts: audit.Options{Kind: model.KindText, URLToken: "abc123"},
			mock: &mockClient{
				auditPushFunc: func(_ context.Context, kind model.Kind, urlToken string) (*pushapi.AuditLog, error) {
					assert.Equal(t, model.KindText, kind)
					assert.Equal(t, "abc123", urlToken)
					return &pushapi.AuditLog{Views: []pushapi.View{
						{IP: "203.0.113.7", UserAgent: "curl/8.5.0", Successful: true, CreatedAt: viewedAt},
						{IP: "198.51.100.2", Successful: false},
					}}, nil
				},
			},
			check: func(t *testing.T, stdout string) {
				assert.Contains(t, stdout, "View 1: viewed")
				assert.Contains(t, stdout, "IP: 203.0.113.7")
				assert.Contains(t, stdout, "User-Agent: curl/8.5.0")
				assert.Contains(t, stdout, "Date: 2026-08-02T09:30:00Z")
				assert.Contains(t, stdout, "View 2: denied")
			},
		},
		{
			name: "no views",
			opts: audit.Options{Kind: model.KindText, URLToken: "abc123"},
			mock: &mockClient{
				auditPushFunc: func(_ context.Context, _ model.Kind, _ string) (*pushapi.AuditLog, error) {
					return &pushapi.AuditLog{}, nil
				},
			},
			check: func(t *testing.T, stdout string) {
				assert.Contains(t, stdout, "No views recorded.")
			},
		},
		{
			name: "not the owner",
			opts: audit.Options{Kind: model.KindText, URLToken: "abc123"},
			mock: &mockClient{
				auditPushFunc: func(_ context.Context, _ model.Kind, _ string) (*pushapi.AuditLog, error) {
					return nil, &pushapi.RemoteError{StatusCode: 403, Message: "that push doesn't belong to you"}
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var stdout, stderr bytes.Buffer
			r := &audit.Runner{
				UseCase: &usecase.AuditUseCase{Client: tt.mock},
				Renderer: &render.Renderer{
					Mode:   render.ModeHuman,
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
