// Package pushapi provides types and interfaces for the Password Pusher
// JSON API.
package pushapi

import (
	"context"

	"github.com/pwpush/pwpush-cli/internal/model"
)

// CreatePushAPI is the interface for creating a push.
type CreatePushAPI interface {
	CreatePush(ctx context.Context, kind model.Kind, input *CreatePushInput) (*Push, error)
}

// GetPushAPI is the interface for retrieving a push's metadata.
type GetPushAPI interface {
	GetPush(ctx context.Context, kind model.Kind, urlToken string) (*Push, error)
}

// PreviewPushAPI is the interface for retrieving a push's share link.
type PreviewPushAPI interface {
	PreviewPush(ctx context.Context, kind model.Kind, urlToken string) (*Preview, error)
}

// AuditPushAPI is the interface for retrieving a push's view log.
type AuditPushAPI interface {
	AuditPush(ctx context.Context, kind model.Kind, urlToken string) (*AuditLog, error)
}

// ExpirePushAPI is the interface for expiring a push.
type ExpirePushAPI interface {
	ExpirePush(ctx context.Context, kind model.Kind, urlToken string) (*Push, error)
}

// ListPushesAPI is the interface for listing the caller's pushes.
type ListPushesAPI interface {
	ListPushes(ctx context.Context, kind model.Kind, expired bool) ([]Push, error)
}

// ShareURLAPI is the interface for computing the public share link of a
// push without a network call.
type ShareURLAPI interface {
	ShareURL(kind model.Kind, urlToken string) string
}
