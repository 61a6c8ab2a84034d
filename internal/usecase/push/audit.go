package push

import (
	"context"
	"fmt"

	"github.com/pwpush/pwpush-cli/internal/api/pushapi"
	"github.com/pwpush/pwpush-cli/internal/model"
)

// AuditClient is the interface for the audit use case.
type AuditClient interface {
	pushapi.AuditPushAPI
}

// AuditInput holds input for the audit use case.
type AuditInput struct {
	Kind     model.Kind
	URLToken string
}

// AuditOutput holds the result of the audit use case.
type AuditOutput struct {
	URLToken string         `json:"url_token"`
	Views    []pushapi.View `json:"views"`
}

// AuditUseCase executes audit operations.
type AuditUseCase struct {
	Client AuditClient
}

// Execute runs the audit use case.
func (u *AuditUseCase) Execute(ctx context.Context, input AuditInput) (*AuditOutput, error) {
	result, err := u.Client.AuditPush(ctx, input.Kind, input.URLToken)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve audit log: %w", err)
	}

	return &AuditOutput{
		URLToken: input.URLToken,
		Views:    result.Views,
	}, nil
}
