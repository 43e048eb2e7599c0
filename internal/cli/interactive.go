package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/plugforge/plugforge/internal/template"
)

// selectTemplate presents a numbered list of the available templates and
// reads the user's choice. The returned name is guaranteed to exist in the
// store.
func selectTemplate(reader *bufio.Reader, w io.Writer, store *template.Store) (string, error) {
	templates := store.List()
	fmt.Fprintln(w, "Available templates:")
	for i, tpl := range templates {
		line := fmt.Sprintf("  %d) %s v%s (%s)", i+1, tpl.Name, tpl.Version, tpl.Source)
		if tpl.Description != "" {
			line += " - " + tpl.Description
		}
		fmt.Fprintln(w, line)
	}
	fmt.Fprintf(w, "Select template [1-%d]: ", len(templates))

	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading selection: %w", err)
	}
	line = strings.TrimSpace(line)

	choice, err := strconv.Atoi(line)
	if err != nil || choice < 1 || choice > len(templates) {
		return "", fmt.Errorf("invalid selection %q: enter a number between 1 and %d", line, len(templates))
	}
	return templates[choice-1].Name, nil
}

// promptLine prints a prompt and reads one line of input, trimmed of
// surrounding whitespace.
func promptLine(reader *bufio.Reader, w io.Writer, prompt string) (string, error) {
	fmt.Fprint(w, prompt)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
