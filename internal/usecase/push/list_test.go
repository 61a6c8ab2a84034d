package push_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pwpush/pwpush-cli/internal/api/pushapi"
	"github.com/pwpush/pwpush-cli/internal/model"
	"github.com/pwpush/pwpush-cli/internal/usecase/push"
)

type mockListClient struct {
	listFunc func(ctx context.Context, kind model.Kind, expired bool) ([]pushapi.Push, error)
}

func (m *mockListClient) ListPushes(ctx context.Context, kind model.Kind, expired bool) ([]pushapi.Push, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, kind, expired)
	}
	return nil, errors.New("ListPushes not mocked")
}

func TestListUseCase_Execute(t *testing.T) {
	t.Parallel()

	client := &mockListClient{
		listFunc: func(_ context.Context, kind model.Kind, expired bool) ([]pushapi.Push, error) {
			assert.Equal(t, model.KindText, kind)
			if expired {
				return []pushapi.Push{{URLToken: "old1"}}, nil
			}
			return []pushapi.Push{{URLToken: "new1"}, {URLToken: "new2"}}, nil
		},
	}
	uc := &push.ListUseCase{Client: client}

	t.Run("active", func(t *testing.T) {
		t.Parallel()
		out, err := uc.Execute(t.Context(), push.ListInput{Kind: model.KindText, Scope: push.ScopeActive})
		require.NoError(t, err)
		assert.Len(t, out.Active, 2)
		assert.Empty(t, out.Expired)
	})

	t.Run("expired", func(t *testing.T) {
		t.Parallel()
		out, err := uc.Execute(t.Context(), push.ListInput{Kind: model.KindText, Scope: push.ScopeExpired})
		require.NoError(t, err)
		assert.Empty(t, out.Active)
		assert.Len(t, out.Expired, 1)
	})

	t.Run("all", func(t *testing.T) {
		t.Parallel()
		out, err := uc.Execute(t.Context(), push.ListInput{Kind: model.KindText, Scope: push.ScopeAll})
		require.NoError(t, err)
		assert.Len(t, out.Active, 2)
		assert.Len(t, out.Expired, 1)
	})
}

func TestListUseCase_Execute_Error(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("boom")
	client := &mockListClient{
		listFunc: func(_ context.Context, _ model.Kind, _ bool) ([]pushapi.Push, error) {
			return nil, wantErr
		},
	}
	uc := &push.ListUseCase{Client: client}

	for _, scope := range []push.ListScope{push.ScopeActive, push.ScopeExpired, push.ScopeAll} {
		_, err := uc.Execute(t.Context(), push.ListInput{Kind: model.KindFile, Scope: scope})
		require.ErrorIs(t, err, wantErr)
		assert.Contains(t, err.Error(), "failed to list pushes")
	}
}
