package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ErrInputClosed is returned when the input stream ends before a line is read
var ErrInputClosed = errors.New("input closed")

// clearScreen moves the cursor home and erases the display
const clearScreen = "\x1b[H\x1b[2J"

// Options controls console behavior
type Options struct {
	// ClearScreen enables the clear-screen sequence before each display update
	ClearScreen bool
}

// Console reads acknowledgment lines and writes text to a terminal
type Console struct {
	in   *bufio.Reader
	out  io.Writer
	opts Options
}

// New creates a console over the given streams
func New(in io.Reader, out io.Writer, opts Options) *Console {
	return &Console{
		in:   bufio.NewReader(in),
		out:  out,
		opts: opts,
	}
}

// Print writes text without a trailing newline
func (c *Console) Print(a ...any) {
	fmt.Fprint(c.out, a...)
}

// Println writes text followed by a newline
func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

// Clear erases the screen when clearing is enabled
func (c *Console) Clear() {
	if c.opts.ClearScreen {
		fmt.Fprint(c.out, clearScreen)
	}
}

// WaitForEnter prints the prompt and blocks until a line is entered.
// The line's content is ignored.
func (c *Console) WaitForEnter(prompt string) error {
	fmt.Fprint(c.out, prompt)

	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line != "" {
				// Final unterminated line still counts.
				fmt.Fprintln(c.out)
				return nil
			}
			fmt.Fprintln(c.out)
			return ErrInputClosed
		}
		return fmt.Errorf("error reading input: %w", err)
	}

	return nil
}

// IsTerminal reports whether output goes to a terminal
func (c *Console) IsTerminal() bool {
	f, ok := c.out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Width returns the terminal width in columns, or 0 when output is not a terminal
func (c *Console) Width() int {
	if !c.IsTerminal() {
		return 0
	}
	f := c.out.(*os.File)
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return 0
	}
	return width
}
