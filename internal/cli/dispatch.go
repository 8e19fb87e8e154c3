// Package cli parses the command line and runs one command per invocation.
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/logging"
	"todo/internal/store/filestore"
	"todo/internal/todolist"
)

// StoreFactory creates the Storage for a resolved config.
// Used to inject the backend during dispatch.
type StoreFactory func(cfg *config.Config, logger *log.Logger) (todolist.Storage, error)

// FileStoreFactory returns a file-backed Storage at cfg.File.
func FileStoreFactory(cfg *config.Config, logger *log.Logger) (todolist.Storage, error) {
	return filestore.New(cfg.File, filestore.WithLogger(logger)), nil
}

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry *commands.Registry
	factory  StoreFactory
}

// NewDispatcher creates a new dispatcher with the given registry and store factory.
// A nil factory uses FileStoreFactory.
func NewDispatcher(registry *commands.Registry, factory StoreFactory) *Dispatcher {
	if factory == nil {
		factory = FileStoreFactory
	}
	return &Dispatcher{
		registry: registry,
		factory:  factory,
	}
}

// Run parses arguments and dispatches to the appropriate command.
// Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	// No args -> dispatch to "list" command with no args
	if len(args) == 0 {
		return d.dispatch(ctx, "list", nil, out, errOut)
	}

	cmdName := args[0]

	// If first token starts with -, it's an error (flags require a command)
	if strings.HasPrefix(cmdName, "-") {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	return d.dispatch(ctx, cmdName, args[1:], out, errOut)
}

func (d *Dispatcher) dispatch(ctx context.Context, cmdName string, args []string, out, errOut io.Writer) int {
	cmd, err := d.registry.Lookup(cmdName)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	return d.dispatchCommand(ctx, cmd, args, out, errOut)
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, cmd commands.Command, args []string, out, errOut io.Writer) int {
	// Create flag set with custom error handling
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard) // We handle errors ourselves

	// Common flags
	var configDir string
	var file string
	var quiet bool
	var debug bool

	fs.StringVar(&configDir, "config", "", "")
	fs.StringVar(&file, "file", "", "")
	fs.StringVar(&file, "f", "", "")
	fs.BoolVar(&quiet, "quiet", false, "")
	fs.BoolVar(&debug, "debug", false, "")

	// Register command-specific flags
	cmd.RegisterFlags(fs)

	// Parse flags
	if err := fs.Parse(args); err != nil {
		errStr := err.Error()

		// Check for unknown flag
		if strings.HasPrefix(errStr, "flag provided but not defined:") {
			flagName := strings.TrimPrefix(errStr, "flag provided but not defined: ")
			fmt.Fprintf(errOut, "error: unknown flag: %s\n", flagName)
			return exitcode.UserError
		}

		fmt.Fprintf(errOut, "error: %s\n", errStr)
		return exitcode.UserError
	}

	// Only flags the user actually set override the config file and env
	ov := config.Overrides{File: file}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "quiet":
			ov.Quiet = &quiet
		case "debug":
			ov.Debug = &debug
		}
	})

	cfg, err := config.Load(configDir, ov)
	if err != nil {
		fmt.Fprintf(errOut, "error: config: %v\n", err)
		return exitcode.ConfigError
	}

	logger := logging.New(errOut, cfg.Debug)
	for _, w := range cfg.Warnings {
		logger.Warn(w)
	}
	logger.Debug("dispatch", "command", cmd.Name(), "file", cfg.File)

	if !cmd.NeedsStore() {
		return cmd.Run(ctx, cfg, nil, fs.Args(), out, errOut)
	}

	storage, err := d.factory(cfg, logger)
	if err != nil {
		fmt.Fprintf(errOut, "error: store: %v\n", err)
		return exitcode.StoreError
	}

	list, err := todolist.Open(ctx, storage)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.StoreError
	}

	code := cmd.Run(ctx, cfg, list, fs.Args(), out, errOut)

	// Always persist, even when the command itself failed
	if err := list.Save(ctx); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		if code == exitcode.Success {
			code = exitcode.StoreError
		}
	}
	return code
}
