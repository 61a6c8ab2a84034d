// Package preview provides the preview command.
package preview

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

// Runner executes the preview command.
type Runner struct {
	UseCase  *usecase.PreviewUseCase
	Renderer *render.Renderer
}

// Options holds the options for the preview command.
type Options struct {
	Kind     model.Kind
	URLToken string
}

// Command returns the preview command with one subcommand per push kind.
func Command() *cli.Command {
	return &cli.Command{
		Name:  "preview",
		Usage: "Show the shareable link of an existing push",
		Commands: lo.Map(model.Kinds(), func(kind model.Kind, _ int) *cli.Command {
			return kindCommand(kind)
		}),
		Action: cliinternal.RequireKind("preview"),
	}
}

func kindCommand(kind model.Kind) *cli.Command {
	return &cli.Command{
		Name:      kind.String(),
		Usage:     "Show the shareable link of a " + kind.String() + " push",
		ArgsUsage: "<url_token>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return action(ctx, cmd, kind)
		},
	}
}

func action(ctx context.Context, cmd *cli.Command, kind model.Kind) error {
	urlToken, err := cliinternal.RequireToken(cmd, "pwpush-cli preview "+kind.String()+" <url_token>")
	if err != nil {
		return err
	}

	client, renderer, err := cliinternal.Setup(cmd)
	if err != nil {
		return err
	}

	r := &Runner{
		UseCase:  &usecase.PreviewUseCase{Client: client},
		Renderer: renderer,
	}

	return r.Run(ctx, Options{Kind: kind, URLToken: urlToken})
}

// Run executes the preview command.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	result, err := r.UseCase.Execute(ctx, usecase.PreviewInput{
		Kind:     opts.Kind,
		URLToken: opts.URLToken,
	})
	if err != nil {
		return r.Renderer.Failure(err)
	}

	return r.Renderer.Success(result, func(w io.Writer) error {
		output.Println(w, result.URL)
		return nil
	})
}
