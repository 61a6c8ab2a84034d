// Package push provides the push command.
package push

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/urfave/cli/v3"

	"github.com/pwpush/pwpush-cli/internal/api/pushapi"
	cliinternal "github.com/pwpush/pwpush-cli/internal/cli/commands/internal"
	"github.com/pwpush/pwpush-cli/internal/cli/output"
	"github.com/pwpush/pwpush-cli/internal/cli/render"
	"github.com/pwpush/pwpush-cli/internal/cli/secretinput"
	"github.com/pwpush/pwpush-cli/internal/model"
	usecase "github.com/pwpush/pwpush-cli/internal/usecase/push"
)

// Runner executes the push command.
type Runner struct {
	UseCase  *usecase.CreateUseCase
	Renderer *render.Renderer
	Input    *secretinput.Reader
}

// Options holds the options for the push command.
type Options struct {
	Kind             model.Kind
	Payload          string
	Files            []pushapi.File
	Note             string
	Passphrase       string
	PassphrasePrompt bool
	ExpireAfterDays  *int
	ExpireAfterViews *int
	Deletable        *bool
	RetrievalStep    *bool
}

// Command returns the push command with one subcommand per push kind.
func Command() *cli.Command {
	return &cli.Command{
		Name:  "push",
		Usage: "Publish a new secret",
		Commands: lo.Map(model.Kinds(), func(kind model.Kind, _ int) *cli.Command {
			return kindCommand(kind)
		}),
		Action: cliinternal.RequireKind("push"),
	}
}

func kindCommand(kind model.Kind) *cli.Command {
	var usage, argsUsage, description string
	switch kind {
	case model.KindFile:
		usage = "Push one or more files"
		argsUsage = "<file>..."
		description = `Upload files as a one-time push. An optional message for the
recipient can be attached with --message.

EXAMPLES:
   pwpush-cli push file ./id_rsa                     Push a single file
   pwpush-cli push file -d 1 -v 1 ./a.pem ./b.pem    Push two files, one view only`
	case model.KindURL:
		usage = "Push a URL redirect"
		argsUsage = "<target-url>"
		description = `Create a one-time redirect to the target URL. The recipient's
visit consumes a view.

EXAMPLES:
   pwpush-cli push url https://internal.example/doc  Push a redirect`
	default:
		usage = "Push a text secret"
		argsUsage = "[payload]"
		description = `Publish a text secret. The payload is taken from the argument,
from a pipe, or from a hidden terminal prompt, in that order.

EXAMPLES:
   pwpush-cli push text hunter2                      Push from the argument
   pwgen 20 1 | pwpush-cli push text                 Push from a pipe
   pwpush-cli push text                              Prompt on the terminal
   pwpush-cli -j push text hunter2                   JSON output for scripting`
	}

	flags := []cli.Flag{
		&cli.IntFlag{
			Name:    "expire-days",
			Aliases: []string{"d"},
			Usage:   "Expire after this many days",
		},
		&cli.IntFlag{
			Name:    "expire-views",
			Aliases: []string{"v"},
			Usage:   "Expire after this many views",
		},
		&cli.StringFlag{
			Name:  "passphrase",
			Usage: "Passphrase recipients must enter before viewing",
		},
		&cli.BoolFlag{
			Name:  "passphrase-prompt",
			Usage: "Prompt for the passphrase on the terminal instead",
		},
		&cli.StringFlag{
			Name:  "note",
			Usage: "Reference note, visible only to the authenticated owner",
		},
		&cli.BoolFlag{
			Name:  "deletable",
			Usage: "Allow the viewer to expire the push early",
		},
		&cli.BoolFlag{
			Name:  "retrieval-step",
			Usage: "Require a click-through step before the secret is shown",
		},
	}
	if kind == model.KindFile {
		flags = append(flags, &cli.StringFlag{
			Name:  "message",
			Usage: "Message shown to the recipient alongside the files",
		})
	}

	return &cli.Command{
		Name:        kind.String(),
		Usage:       usage,
		ArgsUsage:   argsUsage,
		Description: description,
		Flags:       flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return action(ctx, cmd, kind)
		},
	}
}

func action(ctx context.Context, cmd *cli.Command, kind model.Kind) error {
	opts, err := collectOptions(cmd, kind)
	if err != nil {
		return err
	}

	client, renderer, err := cliinternal.Setup(cmd)
	if err != nil {
		return err
	}

	r := &Runner{
		UseCase:  &usecase.CreateUseCase{Client: client},
		Renderer: renderer,
		Input: &secretinput.Reader{
			Stdin:  os.Stdin,
			Stderr: cmd.Root().ErrWriter,
		},
	}

	return r.Run(ctx, opts)
}

func collectOptions(cmd *cli.Command, kind model.Kind) (Options, error) {
	opts := Options{
		Kind:             kind,
		Note:             cmd.String("note"),
		Passphrase:       cmd.String("passphrase"),
		PassphrasePrompt: cmd.Bool("passphrase-prompt"),
	}
	if cmd.IsSet("expire-days") {
		opts.ExpireAfterDays = lo.ToPtr(int(cmd.Int("expire-days")))
	}
	if cmd.IsSet("expire-views") {
		opts.ExpireAfterViews = lo.ToPtr(int(cmd.Int("expire-views")))
	}
	if cmd.IsSet("deletable") {
		opts.Deletable = lo.ToPtr(cmd.Bool("deletable"))
	}
	if cmd.IsSet("retrieval-step") {
		opts.RetrievalStep = lo.ToPtr(cmd.Bool("retrieval-step"))
	}

	switch kind {
	case model.KindFile:
		if cmd.Args().Len() < 1 {
			return opts, fmt.Errorf("usage: pwpush-cli push file <file>...")
		}
		opts.Payload = cmd.String("message")
		for _, path := range cmd.Args().Slice() {
			content, err := os.ReadFile(path)
			if err != nil {
				return opts, fmt.Errorf("failed to read %s: %w", path, err)
			}
			opts.Files = append(opts.Files, pushapi.File{
				Name:    filepath.Base(path),
				Content: content,
			})
		}
	case model.KindURL:
		if cmd.Args().Len() < 1 {
			return opts, fmt.Errorf("usage: pwpush-cli push url <target-url>")
		}
		opts.Payload = cmd.Args().First()
	default:
		opts.Payload = cmd.Args().First()
	}

	return opts, nil
}

// Run executes the push command.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	payload := opts.Payload
	if opts.Kind == model.KindText {
		buf, err := r.Input.ReadPayload(opts.Payload)
		if err != nil {
			return err
		}
		payload, err = buf.String()
		if err != nil {
			return fmt.Errorf("failed to unseal payload: %w", err)
		}
	}

	passphrase := opts.Passphrase
	if passphrase == "" && opts.PassphrasePrompt {
		var err error
		passphrase, err = r.Input.ReadPassphrase()
		if err != nil {
			return err
		}
	}

	result, err := r.UseCase.Execute(ctx, usecase.CreateInput{
		Kind:              opts.Kind,
		Payload:           payload,
		Note:              opts.Note,
		Passphrase:        passphrase,
		ExpireAfterDays:   opts.ExpireAfterDays,
		ExpireAfterViews:  opts.ExpireAfterViews,
		DeletableByViewer: opts.Deletable,
		RetrievalStep:     opts.RetrievalStep,
		Files:             opts.Files,
	})
	if err != nil {
		return r.Renderer.Failure(err)
	}

	return r.Renderer.Success(result, func(w io.Writer) error {
		output.Success(w, "Pushed %s secret: %s", opts.Kind, result.URL)
		if result.Push != nil && result.Push.ExpireAfterDays > 0 {
			output.Printf(w, "Expires in %d days or after %d views.\n",
				result.Push.ExpireAfterDays, result.Push.ExpireAfterViews)
		}
		return nil
	})
}
