package completion_helper

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
)

// DefaultFlagComplete prints the flags of the current command so the shell
// can offer them even when urfave/cli's own completion does not.
func DefaultFlagComplete(_ context.Context, cmd *cli.Command) {
	w := writer(cmd)
	for _, f := range cmd.Flags {
		for _, name := range f.Names() {
			if len(name) == 1 {
				_, _ = fmt.Fprintln(w, "-"+name)
			} else {
				_, _ = fmt.Fprintln(w, "--"+name)
			}
		}
	}
}

// WordComplete returns a completion func offering words while the command
// has no positional argument yet, and flags afterwards.
func WordComplete(words func() []string) cli.ShellCompleteFunc {
	return func(ctx context.Context, cmd *cli.Command) {
		if cmd.Args().Len() > 0 {
			DefaultFlagComplete(ctx, cmd)
			return
		}
		w := writer(cmd)
		for _, word := range words() {
			_, _ = fmt.Fprintln(w, word)
		}
	}
}

func writer(cmd *cli.Command) io.Writer {
	if root := cmd.Root(); root != nil && root.Writer != nil {
		return root.Writer
	}
	return os.Stdout
}
