package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/todolist"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "todo help" }
func (c *HelpCmd) NeedsStore() bool  { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, list *todolist.List, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  todo                                   List all items
  todo list [common flags] [--plain]     List all items
  todo add [common flags] <text...>      Append an item
  todo complete [common flags] <ref>     Remove an item
  todo move [common flags] <ref> <new_index>
  todo help
  todo version

Commands may be shortened to any unique prefix (a, c, l, m).

A <ref> is either a zero-based index or a case-insensitive piece of the
item's text; the first matching item wins.

Common flags:
  --file <path>    Todo file (default: ./TODO, env TODO_FILE)
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr

Environment:
  TODO_FILE        Todo file path
  TODO_DEBUG       Debug logging (1, t, true, 0, f, false)
`
