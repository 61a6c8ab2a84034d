package push_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pwpush/pwpush-cli/internal/api/pushapi"
	"github.com/pwpush/pwpush-cli/internal/model"
	"github.com/pwpush/pwpush-cli/internal/usecase/push"
)

type mockExpireClient struct {
	expireFunc func(ctx context.Context, kind model.Kind, urlToken string) (*pushapi.Push, error)
}

func (m *mockExpireClient) ExpirePush(ctx context.Context, kind model.Kind, urlToken string) (*pushapi.Push, error) {
	if m.expireFunc != nil {
		return m.expireFunc(ctx, kind, urlToken)
	}
	return nil, errors.New("ExpirePush not mocked")
}

func TestExpireUseCase_Execute(t *testing.T) {
	t.Parallel()

	client := &mockExpireClient{
		expireFunc: func(_ context.Context, kind model.Kind, urlToken string) (*pushapi.Push, error) {
			assert.Equal(t, model.KindText, kind)
			assert.Equal(t, "abc123", urlToken)
			return &pushapi.Push{URLToken: "abc123", Expired: true}, nil
		},
	}

	uc := &push.ExpireUseCase{Client: client}
	out, err := uc.Execute(t.Context(), push.ExpireInput{Kind: model.KindText, URLToken: "abc123"})
	require.NoError(t, err)
	assert.Equal(t, "abc123", out.URLToken)
	assert.True(t, out.Expired)
}

func TestExpireUseCase_Execute_EmptyBody(t *testing.T) {
	t.Parallel()

	client := &mockExpireClient{
		expireFunc: func(_ context.Context, _ model.Kind, _ string) (*pushapi.Push, error) {
			return &pushapi.Push{}, nil
		},
	}

	uc := &push.ExpireUseCase{Client: client}
	out, err := uc.Execute(t.Context(), push.ExpireInput{Kind: model.KindURL, URLToken: "abc123"})
	require.NoError(t, err)
	assert.Equal(t, "abc123", out.URLToken)
	assert.True(t, out.Expired)
}

func TestExpireUseCase_Execute_NotFound(t *testing.T) {
	t.Parallel()

	client := &mockExpireClient{
		expireFunc: func(_ context.Context, _ model.Kind, _ string) (*pushapi.Push, error) {
			return nil, &pushapi.RemoteError{StatusCode: http.StatusNotFound}
		},
	}

	uc := &push.ExpireUseCase{Client: client}
	_, err := uc.Execute(t.Context(), push.ExpireInput{Kind: model.KindText, URLToken: "missing"})
	require.Error(t, err)

	var remoteErr *pushapi.RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, http.StatusNotFound, remoteErr.StatusCode)
}
