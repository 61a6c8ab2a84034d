package push

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/pwpush/pwpush-cli/internal/api/pushapi"
	"github.com/pwpush/pwpush-cli/internal/model"
)

// ExpireClient is the interface for the expire use case.
type ExpireClient interface {
	pushapi.ExpirePushAPI
}

// ExpireInput holds input for the expire use case.
type ExpireInput struct {
	Kind     model.Kind
	URLToken string
}

// ExpireOutput holds the result of the expire use case.
type ExpireOutput struct {
	URLToken string        `json:"url_token"`
	Expired  bool          `json:"expired"`
	Push     *pushapi.Push `json:"push"`
}

// ExpireUseCase executes expire operations.
type ExpireUseCase struct {
	Client ExpireClient
}

// Execute runs the expire use case.
func (u *ExpireUseCase) Execute(ctx context.Context, input ExpireInput) (*ExpireOutput, error) {
	result, err := u.Client.ExpirePush(ctx, input.Kind, input.URLToken)
	if err != nil {
		return nil, fmt.Errorf("failed to expire push: %w", err)
	}

	// Some instances answer an empty body on DELETE; fall back to the
	// token the caller gave us.
	return &ExpireOutput{
		URLToken: lo.CoalesceOrEmpty(result.URLToken, input.URLToken),
		Expired:  true,
		Push:     result,
	}, nil
}
