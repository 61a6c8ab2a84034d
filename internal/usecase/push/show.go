package push

import (
	"context"
	"fmt"

	"github.com/pwpush/pwpush-cli/internal/api/pushapi"
	"github.com/pwpush/pwpush-cli/internal/model"
)

// ShowClient is the interface for the show use case.
type ShowClient interface {
	pushapi.GetPushAPI
	pushapi.ShareURLAPI
}

// ShowInput holds input for the show use case.
type ShowInput struct {
	Kind     model.Kind
	URLToken string
}

// ShowOutput holds the result of the show use case.
type ShowOutput struct {
	URL  string        `json:"url"`
	Push *pushapi.Push `json:"push"`
}

// ShowUseCase executes show (info) operations.
type ShowUseCase struct {
	Client ShowClient
}

// Execute runs the show use case.
func (u *ShowUseCase) Execute(ctx context.Context, input ShowInput) (*ShowOutput, error) {
	result, err := u.Client.GetPush(ctx, input.Kind, input.URLToken)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve push: %w", err)
	}

	return &ShowOutput{
		URL:  u.Client.ShareURL(input.Kind, input.URLToken),
		Push: result,
	}, nil
}
