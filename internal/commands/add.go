package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/output"
	"todo/internal/todolist"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct{}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return nil }
func (c *AddCmd) Synopsis() string  { return "Append an item" }
func (c *AddCmd) Usage() string     { return "todo add <text...>" }
func (c *AddCmd) NeedsStore() bool  { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, list *todolist.List, args []string, out, errOut io.Writer) int {
	// Join args to form the item text
	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		fmt.Fprintln(errOut, "error: text required")
		return exitcode.UserError
	}
	// One item per line in the todo file, so a newline would split it
	if strings.ContainsAny(text, "\r\n") {
		fmt.Fprintln(errOut, "error: text must be a single line")
		return exitcode.UserError
	}

	idx := list.Add(text)

	if !cfg.Quiet {
		fmt.Fprintln(out, output.Added(text, idx))
	}
	return exitcode.Success
}
