// Package expire provides the expire command.
package expire

import (
	"context"
	"io"

	"github.com/samber/lo"
	"github.com/urfave/cli/v3"

	cliinternal "github.com/pwpush/pwpush-cli/internal/cli/commands/internal"
	"github.com/pwpush/pwpush-cli/internal/cli/output"
	"github.com/pwpush/pwpush-cli/internal/cli/render"
	"github.com/pwpush/pwpush-cli/internal/model"
	usecase "github.com/pwpush/pwpush-cli/internal/usecase/push"
)

// Runner executes the expire command.
type Runner struct {
	UseCase  *usecase.ExpireUseCase
	Renderer *render.Renderer
}

// Options holds the options for the expire command.
type Options struct {
	Kind     model.Kind
	URLToken string
}

// Command returns the expire command with one subcommand per push kind.
func Command() *cli.Command {
	return &cli.Command{
		Name:  "expire",
		Usage: "Expire an existing secret",
		Commands: lo.Map(model.Kinds(), func(kind model.Kind, _ int) *cli.Command {
			return kindCommand(kind)
		}),
		Action: cliinternal.RequireKind("expire"),
	}
}

func kindCommand(kind model.Kind) *cli.Command {
	return &cli.Command{
		Name:      kind.String(),
		Usage:     "Expire a " + kind.String() + " push",
		ArgsUsage: "<url_token>",
		Description: `Invalidate a previously pushed secret before its natural
expiration. The url_token is the identifier returned when the push
was created.`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return action(ctx, cmd, kind)
		},
	}
}

func action(ctx context.Context, cmd *cli.Command, kind model.Kind) error {
	urlToken, err := cliinternal.RequireToken(cmd, "pwpush-cli expire "+kind.String()+" <url_token>")
	if err != nil {
		return err
	}

	client, renderer, err := cliinternal.Setup(cmd)
	if err != nil {
		return err
	}

	r := &Runner{
		UseCase:  &usecase.ExpireUseCase{Client: client},
		Renderer: renderer,
	}

	return r.Run(ctx, Options{Kind: kind, URLToken: urlToken})
}

// Run executes the expire command.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	result, err := r.UseCase.Execute(ctx, usecase.ExpireInput{
		Kind:     opts.Kind,
		URLToken: opts.URLToken,
	})
	if err != nil {
		return r.Renderer.Failure(err)
	}

	return r.Renderer.Success(result, func(w io.Writer) error {
		output.Success(w, "Expired %s push %s", opts.Kind, result.URLToken)
		return nil
	})
}
