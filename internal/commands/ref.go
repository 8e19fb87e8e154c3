package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"todo/internal/todolist"
)

// ErrRefRequired indicates no item reference was provided.
var ErrRefRequired = errors.New("item reference required")

// ParseRef parses an item reference from args.
//
// Parsing rules:
//  1. No args, or only whitespace → ErrRefRequired
//  2. A single all-digit argument → zero-based index reference
//  3. Anything else → text reference, args joined by single spaces
func ParseRef(args []string) (todolist.Ref, error) {
	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		return todolist.Ref{}, ErrRefRequired
	}

	if todolist.IsAllDigits(text) {
		if n, err := strconv.Atoi(text); err == nil {
			return todolist.ByIndex(n), nil
		}
		// Too large for an int; Find treats it as an index past the end.
	}
	return todolist.ByText(text), nil
}

// ParseIndex parses a strict zero-based integer position.
func ParseIndex(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid index: %s", s)
	}
	return n, nil
}
