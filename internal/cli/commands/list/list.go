// Package list provides the list command.
package list

import (
	"context"
	"fmt"
	"io"

	"github.com/samber/lo"
	"github.com/urfave/cli/v3"

	"github.com/pwpush/pwpush-cli/internal/api/pushapi"
	cliinternal "github.com/pwpush/pwpush-cli/internal/cli/commands/internal"
	"github.com/pwpush/pwpush-cli/internal/cli/colors"
	"github.com/pwpush/pwpush-cli/internal/cli/output"
	"github.com/pwpush/pwpush-cli/internal/cli/pager"
	"github.com/pwpush/pwpush-cli/internal/cli/render"
	"github.com/pwpush/pwpush-cli/internal/model"
	usecase "github.com/pwpush/pwpush-cli/internal/usecase/push"
)

// Runner executes the list command.
type Runner struct {
	UseCase  *usecase.ListUseCase
	Renderer *render.Renderer
}

// Options holds the options for the list command.
type Options struct {
	Kind    model.Kind
	Scope   usecase.ListScope
	NoPager bool
}

// Command returns the list command with one subcommand per push kind.
func Command() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List your pushes",
		Commands: lo.Map(model.Kinds(), func(kind model.Kind, _ int) *cli.Command {
			return kindCommand(kind)
		}),
		Action: cliinternal.RequireKind("list"),
	}
}

func kindCommand(kind model.Kind) *cli.Command {
	return &cli.Command{
		Name:  kind.String(),
		Usage: "List your " + kind.String() + " pushes",
		Description: `List pushes owned by the authenticated account. Active pushes are
listed by default.

EXAMPLES:
   pwpush-cli -e me@example.com -t TOKEN list text             Active pushes
   pwpush-cli -e me@example.com -t TOKEN list text --expired   Expired pushes
   pwpush-cli -e me@example.com -t TOKEN list text --all       Both`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "expired",
				Usage: "List expired pushes instead of active ones",
			},
			&cli.BoolFlag{
				Name:  "all",
				Usage: "List active and expired pushes",
			},
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
	client, renderer, err := cliinternal.Setup(cmd)
	if err != nil {
		return err
	}

	scope := usecase.ScopeActive
	switch {
	case cmd.Bool("all"):
		scope = usecase.ScopeAll
	case cmd.Bool("expired"):
		scope = usecase.ScopeExpired
	}

	opts := Options{
		Kind:    kind,
		Scope:   scope,
		NoPager: cmd.Bool("no-pager"),
	}

	noPager := opts.NoPager || renderer.Mode == render.ModeJSON

	return pager.WithPagerWriter(cmd.Root().Writer, noPager, func(w io.Writer) error {
		r := &Runner{
			UseCase: &usecase.ListUseCase{Client: client},
			Renderer: &render.Renderer{
				Mode:   renderer.Mode,
				Stdout: w,
				Stderr: renderer.Stderr,
			},
		}
		return r.Run(ctx, opts)
	})
}

// Run executes the list command.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	result, err := r.UseCase.Execute(ctx, usecase.ListInput{
		Kind:  opts.Kind,
		Scope: opts.Scope,
	})
	if err != nil {
		return r.Renderer.Failure(err)
	}

	return r.Renderer.Success(result, func(w io.Writer) error {
		if len(result.Active) == 0 && len(result.Expired) == 0 {
			output.Info(w, "No pushes found.")
			return nil
		}

		writeGroup(w, colors.Active("active"), result.Active)
		if len(result.Active) > 0 && len(result.Expired) > 0 {
			output.Println(w, "")
		}
		writeGroup(w, colors.Expired("expired"), result.Expired)
		return nil
	})
}

func writeGroup(w io.Writer, marker string, pushes []pushapi.Push) {
	for _, p := range pushes {
		line := fmt.Sprintf("%s  %s", marker, p.URLToken)
		if p.Note != "" {
			line += "  " + p.Note
		}
		line += fmt.Sprintf("  (%d days / %d views left)", p.DaysRemaining, p.ViewsRemaining)
		output.Println(w, line)
	}
}
