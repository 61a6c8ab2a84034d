// Package audit provides the audit command.
package audit

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/samber/lo"
	"github.com/urfave/cli/v3"

	cliinternal "github.com/pwpush/pwpush-cli/internal/cli/commands/internal"
	"github.com/pwpush/pwpush-cli/internal/cli/colors"
	"github.com/pwpush/pwpush-cli/internal/cli/output"
	"github.com/pwpush/pwpush-cli/internal/cli/pager"
	"github.com/pwpush/pwpush-cli/internal/cli/render"
	"github.com/pwpush/pwpush-cli/internal/model"
	usecase "github.com/pwpush/pwpush-cli/internal/usecase/push"
)

// Runner executes the audit command.
type Runner struct {
	UseCase  *usecase.AuditUseCase
	Renderer *render.Renderer
}

// Options holds the options for the audit command.
type Options struct {
	Kind     model.Kind
	URLToken string
	NoPager  bool
}

// Command returns the audit command with one subcommand per push kind.
func Command() *cli.Command {
	return &cli.Command{
		Name:  "audit",
		Usage: "Show the view log of an existing push",
		Commands: lo.Map(model.Kinds(), func(kind model.Kind, _ int) *cli.Command {
			return kindCommand(kind)
		}),
		Action: cliinternal.RequireKind("audit"),
	}
}

func kindCommand(kind model.Kind) *cli.Command {
	return &cli.Command{
		Name:      kind.String(),
		Usage:     "Show the view log of a " + kind.String() + " push",
		ArgsUsage: "<url_token>",
		Description: `List every retrieval attempt recorded for the push. The service
only discloses the log to the authenticated owner, so --email and
--token are required in practice.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "no-pager",
				Usage: "Disable pager output",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return action(ctx, cmd, kind)
		},
	}
}

func action(ctx context.Context, cmd *cli.Command, kind model.Kind) error {
	urlToken, err := cliinternal.RequireToken(cmd, "pwpush-cli audit "+kind.String()+" <url_token>")
	if err != nil {
		return err
	}

	client, renderer, err := cliinternal.Setup(cmd)
	if err != nil {
		return err
	}

	opts := Options{
		Kind:     kind,
		URLToken: urlToken,
		NoPager:  cmd.Bool("no-pager"),
	}

	// JSON output is already pipe-friendly; only human output is paged.
	noPager := opts.NoPager || renderer.Mode == render.ModeJSON

	return pager.WithPagerWriter(cmd.Root().Writer, noPager, func(w io.Writer) error {
		r := &Runner{
			UseCase: &usecase.AuditUseCase{Client: client},
			Renderer: &render.Renderer{
				Mode:   renderer.Mode,
				Stdout: w,
				Stderr: renderer.Stderr,
			},
		}
		return r.Run(ctx, opts)
	})
}

// Run executes the audit command.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	result, err := r.UseCase.Execute(ctx, usecase.AuditInput{
		Kind:     opts.Kind,
		URLToken: opts.URLToken,
	})
	if err != nil {
		return r.Renderer.Failure(err)
	}

	return r.Renderer.Success(result, func(w io.Writer) error {
		if len(result.Views) == 0 {
			output.Info(w, "No views recorded.")
			return nil
		}

		out := output.New(w)
		for i, view := range result.Views {
			marker := colors.Active("viewed")
			if !view.Successful {
				marker = colors.Expired("denied")
			}
			out.Field(fmt.Sprintf("View %d", i+1), marker)
			if view.IP != "" {
				out.Field("IP", view.IP)
			}
			if view.UserAgent != "" {
				out.Field("User-Agent", view.UserAgent)
			}
			if view.Referrer != "" {
				out.Field("Referrer", view.Referrer)
			}
			if !view.CreatedAt.IsZero() {
				out.Field("Date", view.CreatedAt.Format(time.RFC3339))
			}
			if i < len(result.Views)-1 {
				out.Separator()
			}
		}
		return nil
	})
}
