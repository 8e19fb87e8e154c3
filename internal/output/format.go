// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// EmptyList is printed by the list command when there is nothing to show.
const EmptyList = "no items"

// Styles holds the lipgloss styles bound to one output writer.
// Colour is dropped automatically when the writer is not a terminal.
type Styles struct {
	Index lipgloss.Style
	Item  lipgloss.Style
	Muted lipgloss.Style
}

// NewStyles builds styles for w.
func NewStyles(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	return Styles{
		Index: r.NewStyle().Faint(true),
		Item:  r.NewStyle(),
		Muted: r.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// FormatItems writes one line per item.
// Format: "{N:>4}  {ITEM}\n" with N the zero-based index.
func FormatItems(w io.Writer, items []string) {
	st := NewStyles(w)
	for i, item := range items {
		fmt.Fprintf(w, "%s  %s\n", st.Index.Render(fmt.Sprintf("%4d", i)), st.Item.Render(normalizeItem(item)))
	}
}

// FormatPlain writes items joined by newlines, exactly as stored.
// Nothing is written for an empty list.
func FormatPlain(w io.Writer, listAll string) {
	if listAll == "" {
		return
	}
	fmt.Fprintln(w, listAll)
}

// FormatEmpty writes the empty-list notice.
func FormatEmpty(w io.Writer) {
	fmt.Fprintln(w, NewStyles(w).Muted.Render(EmptyList))
}

// Added formats the add confirmation.
func Added(item string, index int) string {
	return fmt.Sprintf("Added new todo %q at %d", item, index)
}

// Completed formats the complete confirmation.
func Completed(item string) string {
	return fmt.Sprintf("Completed %q", item)
}

// Moved formats the move confirmation.
func Moved(item string, index int) string {
	return fmt.Sprintf("Moved %q to %d", item, index)
}

// normalizeItem replaces carriage returns so a stray \r from a CRLF file
// does not rewind the terminal line.
func normalizeItem(item string) string {
	return strings.ReplaceAll(item, "\r", "")
}
