package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/output"
	"todo/internal/todolist"
)

func init() {
	Register(&CompleteCmd{})
}

// CompleteCmd implements the complete command.
type CompleteCmd struct{}

func (c *CompleteCmd) Name() string      { return "complete" }
func (c *CompleteCmd) Aliases() []string { return []string{"done"} }
func (c *CompleteCmd) Synopsis() string  { return "Remove a finished item" }
func (c *CompleteCmd) Usage() string     { return "todo complete <ref>" }
func (c *CompleteCmd) NeedsStore() bool  { return true }

func (c *CompleteCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *CompleteCmd) Run(ctx context.Context, cfg *config.Config, list *todolist.List, args []string, out, errOut io.Writer) int {
	ref, err := ParseRef(args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	item, err := list.Complete(ref)
	if err != nil {
		return reportListError(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, output.Completed(item))
	}
	return exitcode.Success
}

// reportListError prints an engine error and maps it to an exit code.
func reportListError(errOut io.Writer, err error) int {
	fmt.Fprintf(errOut, "error: %v\n", err)
	switch {
	case errors.Is(err, todolist.ErrNotFound),
		errors.Is(err, todolist.ErrInvalidPosition),
		errors.Is(err, todolist.ErrOutOfRange):
		return exitcode.UserError
	default:
		return exitcode.StoreError
	}
}
