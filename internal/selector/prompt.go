package selector

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// TerminalPrompter reads numbered-menu selections from a terminal. There is
// no re-prompt loop: a bad entry is a hard error.
type TerminalPrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewTerminalPrompter creates a prompter reading from in and writing menus
// to out.
func NewTerminalPrompter(in io.Reader, out io.Writer) *TerminalPrompter {
	return &TerminalPrompter{in: bufio.NewReader(in), out: out}
}

// Choose prints a 1-indexed menu and returns the zero-based index of the
// chosen option.
func (p *TerminalPrompter) Choose(title string, options []string) (int, error) {
	fmt.Fprintf(p.out, "%s:\n", title)
	for i, option := range options {
		fmt.Fprintf(p.out, "  %d) %s\n", i+1, option)
	}
	fmt.Fprint(p.out, "> ")

	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return 0, fmt.Errorf("read selection: %w", err)
	}
	input := strings.TrimSpace(line)

	choice, err := strconv.Atoi(input)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidSelection, input)
	}
	if choice < 1 || choice > len(options) {
		return 0, fmt.Errorf("%w: %d is out of range 1-%d", ErrInvalidSelection, choice, len(options))
	}
	return choice - 1, nil
}
