// Package commands provides the command-line interface for pwpush-cli.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/samber/lo"
	"github.com/urfave/cli/v3"

	"github.com/pwpush/pwpush-cli/internal/cli/commands/audit"
	"github.com/pwpush/pwpush-cli/internal/cli/commands/expire"
	"github.com/pwpush/pwpush-cli/internal/cli/commands/info"
	"github.com/pwpush/pwpush-cli/internal/cli/commands/list"
	"github.com/pwpush/pwpush-cli/internal/cli/commands/preview"
	"github.com/pwpush/pwpush-cli/internal/cli/commands/push"
	"github.com/pwpush/pwpush-cli/internal/config"
	"github.com/pwpush/pwpush-cli/internal/logging"
)

// MakeApp creates a new CLI application instance.
func MakeApp() *cli.Command {
	return &cli.Command{
		Name:    "pwpush-cli",
		Usage:   "Command-line client for Password Pusher",
		Version: "0.1.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "url",
				Aliases:     []string{"u"},
				Usage:       "Password Pusher instance URL",
				DefaultText: config.DefaultURL,
				Sources:     cli.EnvVars("PWPUSH_URL"),
			},
			&cli.StringFlag{
				Name:        "protocol",
				Aliases:     []string{"p"},
				Usage:       "Instance protocol (http or https)",
				DefaultText: config.DefaultProtocol,
				Sources:     cli.EnvVars("PWPUSH_PROTOCOL"),
			},
			&cli.StringFlag{
				Name:    "email",
				Aliases: []string{"e"},
				Usage:   "Email for authenticated requests (X-User-Email header)",
				Sources: cli.EnvVars("PWPUSH_EMAIL"),
			},
			&cli.StringFlag{
				Name:    "token",
				Aliases: []string{"t"},
				Usage:   "API token for authenticated requests (X-User-Token header)",
				Sources: cli.EnvVars("PWPUSH_TOKEN"),
			},
			&cli.BoolFlag{
				Name:    "json",
				Aliases: []string{"j"},
				Usage:   "Machine-parseable JSON output (human-readable if omitted)",
			},
			&cli.StringFlag{
				Name:    "log",
				Aliases: []string{"l"},
				Value:   "warn",
				Usage:   "Log verbosity (error, warn, info, debug, trace); logs always go to stderr",
				Sources: cli.EnvVars("PWPUSH_LOG"),
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Value: config.DefaultTimeout,
				Usage: "HTTP request timeout",
			},
		},
		Before: setupLogging,
		Commands: []*cli.Command{
			push.Command(),
			expire.Command(),
			info.Command(),
			preview.Command(),
			audit.Command(),
			list.Command(),
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if name := cmd.Args().First(); name != "" {
				_ = cli.ShowAppHelp(cmd)
				return fmt.Errorf("unknown command %q", name)
			}
			return cli.ShowAppHelp(cmd)
		},
		// Keep exit-coded framework errors from exiting in place; they
		// propagate to main and get the shared exit-code mapping.
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}
}

// App is the main CLI application.
var App = MakeApp()

func setupLogging(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	level, err := logging.ParseLevel(cmd.String("log"))
	if err != nil {
		return ctx, err
	}

	w := lo.CoalesceOrEmpty[io.Writer](cmd.Root().ErrWriter, os.Stderr)
	logging.Setup(w, level)

	return ctx, nil
}
