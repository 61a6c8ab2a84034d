// Package info provides the info command.
package info

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/samber/lo"
	"github.com/urfave/cli/v3"

	cliinternal "github.com/pwpush/pwpush-cli/internal/cli/commands/internal"
	"github.com/pwpush/pwpush-cli/internal/cli/output"
	"github.com/pwpush/pwpush-cli/internal/cli/render"
	"github.com/pwpush/pwpush-cli/internal/model"
	usecase "github.com/pwpush/pwpush-cli/internal/usecase/push"
)

// Runner executes the info command.
type Runner struct {
	UseCase  *usecase.ShowUseCase
	Renderer *render.Renderer
}

// Options holds the options for the info command.
type Options struct {
	Kind     model.Kind
	URLToken string
}

// Command returns the info command with one subcommand per push kind.
func Command() *cli.Command {
	return &cli.Command{
		Name:  "info",
		Usage: "Show metadata of an existing push",
		Commands: lo.Map(model.Kinds(), func(kind model.Kind, _ int) *cli.Command {
			return kindCommand(kind)
		}),
		Action: cliinternal.RequireKind("info"),
	}
}

func kindCommand(kind model.Kind) *cli.Command {
	return &cli.Command{
		Name:      kind.String(),
		Usage:     "Show metadata of a " + kind.String() + " push",
		ArgsUsage: "<url_token>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return action(ctx, cmd, kind)
		},
	}
}

func action(ctx context.Context, cmd *cli.Command, kind model.Kind) error {
	urlToken, err := cliinternal.RequireToken(cmd, "pwpush-cli info "+kind.String()+" <url_token>")
	if err != nil {
		return err
	}

	client, renderer, err := cliinternal.Setup(cmd)
	if err != nil {
		return err
	}

	r := &Runner{
		UseCase:  &usecase.ShowUseCase{Client: client},
		Renderer: renderer,
	}

	return r.Run(ctx, Options{Kind: kind, URLToken: urlToken})
}

// Run executes the info command.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	result, err := r.UseCase.Execute(ctx, usecase.ShowInput{
		Kind:     opts.Kind,
		URLToken: opts.URLToken,
	})
	if err != nil {
		return r.Renderer.Failure(err)
	}

	return r.Renderer.Success(result, func(w io.Writer) error {
		p := result.Push
		out := output.New(w)
		out.Field("Token", p.URLToken)
		out.Field("URL", result.URL)
		if p.Note != "" {
			out.Field("Note", p.Note)
		}
		status := "active"
		if p.Expired {
			status = "expired"
		}
		out.Field("Status", status)
		out.Field("Expiration", fmt.Sprintf("%d days / %d views", p.ExpireAfterDays, p.ExpireAfterViews))
		out.Field("Remaining", fmt.Sprintf("%d days / %d views", p.DaysRemaining, p.ViewsRemaining))
		if !p.CreatedAt.IsZero() {
			out.Field("Created", p.CreatedAt.Format(time.RFC3339))
		}
		return nil
	})
}
