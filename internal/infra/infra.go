// Package infra provides API client initialization.
package infra

import (
	"github.com/pwpush/pwpush-cli/internal/api/pushapi"
	"github.com/pwpush/pwpush-cli/internal/config"
)

// NewClient creates a Password Pusher API client from the resolved
// configuration.
func NewClient(cfg *config.Config) *pushapi.Client {
	return pushapi.New(cfg.BaseURL, cfg.Email, cfg.Token, cfg.Timeout)
}
