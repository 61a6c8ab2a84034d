// Package internal provides shared utilities for CLI commands.
package internal

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/pwpush/pwpush-cli/internal/api/pushapi"
	"github.com/pwpush/pwpush-cli/internal/cli/render"
	"github.com/pwpush/pwpush-cli/internal/config"
	"github.com/pwpush/pwpush-cli/internal/infra"
	"github.com/pwpush/pwpush-cli/internal/model"
)

// RequireKind is the fallback action for a verb command invoked without
// a kind subcommand. It shows the subcommand help and returns a usage
// error so unknown or missing kinds exit non-zero.
func RequireKind(verb string) cli.ActionFunc {
	return func(_ context.Context, cmd *cli.Command) error {
		_ = cli.ShowSubcommandHelp(cmd)
		if name := cmd.Args().First(); name != "" {
			if _, err := model.ParseKind(name); err != nil {
				return err
			}
		}
		return fmt.Errorf("usage: pwpush-cli %s <kind>", verb)
	}
}

// Setup resolves the client configuration from the root command's global
// flags and constructs the API client and outcome renderer.
func Setup(cmd *cli.Command) (*pushapi.Client, *render.Renderer, error) {
	root := cmd.Root()

	cfg, err := config.Load(config.Options{
		URL:      root.String("url"),
		Protocol: root.String("protocol"),
		Email:    root.String("email"),
		Token:    root.String("token"),
		Timeout:  root.Duration("timeout"),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	renderer := &render.Renderer{
		Mode:   render.ModeFromJSON(root.Bool("json")),
		Stdout: root.Writer,
		Stderr: root.ErrWriter,
	}

	return infra.NewClient(cfg), renderer, nil
}

// RequireToken extracts the url_token argument common to the expire,
// info, preview, and audit commands.
func RequireToken(cmd *cli.Command, usage string) (string, error) {
	if cmd.Args().Len() < 1 {
		return "", fmt.Errorf("usage: %s", usage)
	}
	return cmd.Args().First(), nil
}
