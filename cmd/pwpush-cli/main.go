package main

import (
	"context"
	"os"

	"github.com/pwpush/pwpush-cli/internal/cli/commands"
	"github.com/pwpush/pwpush-cli/internal/cli/exitcode"
	"github.com/pwpush/pwpush-cli/internal/cli/output"
)

func main() {
	if err := commands.App.Run(context.Background(), os.Args); err != nil {
		output.Error(os.Stderr, "%v", err)
		os.Exit(exitcode.FromError(err))
	}
}
