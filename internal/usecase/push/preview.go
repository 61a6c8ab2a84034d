package push

import (
	"context"
	"fmt"

	"github.com/pwpush/pwpush-cli/internal/api/pushapi"
	"github.com/pwpush/pwpush-cli/internal/model"
)

// PreviewClient is the interface for the preview use case.
type PreviewClient interface {
	pushapi.PreviewPushAPI
}

// PreviewInput holds input for the preview use case.
type PreviewInput struct {
	Kind     model.Kind
	URLToken string
}

// PreviewOutput holds the result of the preview use case.
type PreviewOutput struct {
	URL string `json:"url"`
}

// PreviewUseCase executes preview operations.
type PreviewUseCase struct {
	Client PreviewClient
}

// Execute runs the preview use case.
func (u *PreviewUseCase) Execute(ctx context.Context, input PreviewInput) (*PreviewOutput, error) {
	result, err := u.Client.PreviewPush(ctx, input.Kind, input.URLToken)
	if err != nil {
		return nil, fmt.Errorf("failed to preview push: %w", err)
	}

	return &PreviewOutput{URL: result.URL}, nil
}
