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
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// Handles both `todo` (no args) and `todo list`.
type ListCmd struct {
	plain bool
}

// SetPlain sets plain output (for testing).
func (c *ListCmd) SetPlain(plain bool) {
	c.plain = plain
}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "Print all items" }
func (c *ListCmd) Usage() string     { return "todo list [--plain]" }
func (c *ListCmd) NeedsStore() bool  { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.plain, "plain", false, "")
}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, list *todolist.List, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	// Plain mode prints the stored lines exactly, for piping
	if c.plain {
		output.FormatPlain(out, list.ListAll())
		return exitcode.Success
	}

	if list.Len() == 0 {
		if !cfg.Quiet {
			output.FormatEmpty(out)
		}
		return exitcode.Success
	}

	output.FormatItems(out, list.Items())
	return exitcode.Success
}
