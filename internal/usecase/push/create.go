// Package push implements the use cases behind each CLI operation.
package push

import (
	"context"
	"fmt"

	"github.com/pwpush/pwpush-cli/internal/api/pushapi"
	"github.com/pwpush/pwpush-cli/internal/model"
)

// CreateClient is the interface for the create use case.
type CreateClient interface {
	pushapi.CreatePushAPI
	pushapi.ShareURLAPI
}

// CreateInput holds input for the create use case. Nil option fields
// leave the choice to the service.
type CreateInput struct {
	Kind              model.Kind
	Payload           string
	Note              string
	Passphrase        string
	ExpireAfterDays   *int
	ExpireAfterViews  *int
	DeletableByViewer *bool
	RetrievalStep     *bool
	Files             []pushapi.File
}

// CreateOutput holds the result of the create use case.
type CreateOutput struct {
	URLToken string        `json:"url_token"`
	URL      string        `json:"url"`
	Push     *pushapi.Push `json:"push"`
}

// CreateUseCase executes create operations.
type CreateUseCase struct {
	Client CreateClient
}

// Execute runs the create use case.
func (u *CreateUseCase) Execute(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	result, err := u.Client.CreatePush(ctx, input.Kind, &pushapi.CreatePushInput{
		Payload:           input.Payload,
		Note:              input.Note,
		Passphrase:        input.Passphrase,
		ExpireAfterDays:   input.ExpireAfterDays,
		ExpireAfterViews:  input.ExpireAfterViews,
		DeletableByViewer: input.DeletableByViewer,
		RetrievalStep:     input.RetrievalStep,
		Files:             input.Files,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create push: %w", err)
	}

	return &CreateOutput{
		URLToken: result.URLToken,
		URL:      u.Client.ShareURL(input.Kind, result.URLToken),
		Push:     result,
	}, nil
}
