package push

import (
	"context"
	"fmt"

	"github.com/pwpush/pwpush-cli/internal/api/pushapi"
	"github.com/pwpush/pwpush-cli/internal/model"
	"github.com/pwpush/pwpush-cli/internal/parallel"
)

// ListClient is the interface for the list use case.
type ListClient interface {
	pushapi.ListPushesAPI
}

// ListScope selects which pushes to list.
type ListScope int

// List scopes.
const (
	ScopeActive ListScope = iota
	ScopeExpired
	ScopeAll
)

// ListInput holds input for the list use case.
type ListInput struct {
	Kind  model.Kind
	Scope ListScope
}

// ListOutput holds the result of the list use case. Only the slices the
// scope asked for are populated.
type ListOutput struct {
	Active  []pushapi.Push `json:"active,omitempty"`
	Expired []pushapi.Push `json:"expired,omitempty"`
}

// ListUseCase executes list operations.
type ListUseCase struct {
	Client ListClient
}

// Execute runs the list use case. ScopeAll fetches the active and
// expired pages concurrently.
func (u *ListUseCase) Execute(ctx context.Context, input ListInput) (*ListOutput, error) {
	switch input.Scope {
	case ScopeActive:
		active, err := u.Client.ListPushes(ctx, input.Kind, false)
		if err != nil {
			return nil, fmt.Errorf("failed to list pushes: %w", err)
		}
		return &ListOutput{Active: active}, nil

	case ScopeExpired:
		expired, err := u.Client.ListPushes(ctx, input.Kind, true)
		if err != nil {
			return nil, fmt.Errorf("failed to list pushes: %w", err)
		}
		return &ListOutput{Expired: expired}, nil

	default:
		active, expired, err := parallel.Pair(ctx,
			func(ctx context.Context) ([]pushapi.Push, error) {
				return u.Client.ListPushes(ctx, input.Kind, false)
			},
			func(ctx context.Context) ([]pushapi.Push, error) {
				return u.Client.ListPushes(ctx, input.Kind, true)
			},
		)
		if err != nil {
			return nil, fmt.Errorf("failed to list pushes: %w", err)
		}
		return &ListOutput{Active: active, Expired: expired}, nil
	}
}
