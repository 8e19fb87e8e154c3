package commands

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

var (
	// ErrUnknownCommand indicates no command matches a name or prefix.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrAmbiguousCommand indicates a prefix matches more than one command.
	ErrAmbiguousCommand = errors.New("ambiguous command")
)

// Registry holds registered commands.
// Names are matched case-insensitively.
type Registry struct {
	mu   sync.RWMutex
	cmds map[string]Command // name and aliases map to command
}

// NewRegistry creates a new command registry.
func NewRegistry() *Registry {
	return &Registry{
		cmds: make(map[string]Command),
	}
}

// Register adds a command to the registry.
// Returns an error if the name or any alias is already registered.
func (r *Registry) Register(c Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := strings.ToLower(c.Name())
	if _, exists := r.cmds[name]; exists {
		return fmt.Errorf("command already registered: %s", name)
	}

	for _, alias := range c.Aliases() {
		if _, exists := r.cmds[strings.ToLower(alias)]; exists {
			return fmt.Errorf("command alias already registered: %s", alias)
		}
	}

	r.cmds[name] = c
	for _, alias := range c.Aliases() {
		r.cmds[strings.ToLower(alias)] = c
	}

	return nil
}

// Find looks up a command by its full name or alias.
func (r *Registry) Find(name string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, ok := r.cmds[strings.ToLower(name)]
	return cmd, ok
}

// Lookup resolves name to a command. An exact name or alias wins; otherwise
// name may be any non-empty prefix that selects exactly one command.
func (r *Registry) Lookup(name string) (Command, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
	if cmd, ok := r.Find(name); ok {
		return cmd, nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	prefix := strings.ToLower(name)
	var match Command
	var matched []string
	seen := make(map[string]bool)
	for key, cmd := range r.cmds {
		if !strings.HasPrefix(key, prefix) || seen[cmd.Name()] {
			continue
		}
		seen[cmd.Name()] = true
		match = cmd
		matched = append(matched, cmd.Name())
	}

	switch len(matched) {
	case 0:
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	case 1:
		return match, nil
	default:
		sort.Strings(matched)
		return nil, fmt.Errorf("%w: %s (%s)", ErrAmbiguousCommand, name, strings.Join(matched, ", "))
	}
}

// All returns all unique commands sorted by name.
func (r *Registry) All() []Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Collect unique commands by primary name
	seen := make(map[string]Command)
	for _, cmd := range r.cmds {
		seen[cmd.Name()] = cmd
	}

	// Sort by name
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	result := make([]Command, len(names))
	for i, name := range names {
		result[i] = seen[name]
	}
	return result
}

// DefaultRegistry is the global command registry.
var DefaultRegistry = NewRegistry()

// Register adds a command to the default registry.
func Register(c Command) {
	if err := DefaultRegistry.Register(c); err != nil {
		panic(err)
	}
}
