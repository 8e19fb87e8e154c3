package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/output"
	"todo/internal/todolist"
)

func init() {
	Register(&MoveCmd{})
}

// MoveCmd implements the move command.
// The last argument is the new position; everything before it is the reference.
type MoveCmd struct{}

func (c *MoveCmd) Name() string      { return "move" }
func (c *MoveCmd) Aliases() []string { return nil }
func (c *MoveCmd) Synopsis() string  { return "Reorder an item" }
func (c *MoveCmd) Usage() string     { return "todo move <ref> <new_index>" }
func (c *MoveCmd) NeedsStore() bool  { return true }

func (c *MoveCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *MoveCmd) Run(ctx context.Context, cfg *config.Config, list *todolist.List, args []string, out, errOut io.Writer) int {
	if len(args) < 2 {
		fmt.Fprintf(errOut, "error: usage: %s\n", c.Usage())
		return exitcode.UserError
	}

	// Parse the target first so a bad index never reaches the list
	to, err := ParseIndex(args[len(args)-1])
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	ref, err := ParseRef(args[:len(args)-1])
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	item, err := list.Move(ref, to)
	if err != nil {
		return reportListError(errOut, err)
	}

	// A target equal to the old length lands on the last slot
	if to > list.Len()-1 {
		to = list.Len() - 1
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, output.Moved(item, to))
	}
	return exitcode.Success
}
