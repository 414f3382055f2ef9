// Package console wraps the line-based terminal I/O of the game.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
)

const clearSequence = "\033c"

// Console reads lines from an input stream and writes to an output stream.
type Console struct {
	in    *bufio.Reader
	out   io.Writer
	clear bool
}

// New returns a console over in and out. Screen clearing is enabled only when
// out is a terminal.
func New(in io.Reader, out io.Writer) *Console {
	clear := false
	if f, ok := out.(*os.File); ok {
		clear = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &Console{in: bufio.NewReader(in), out: out, clear: clear}
}

func (c *Console) Printf(format string, v ...any) {
	fmt.Fprintf(c.out, format, v...)
}

func (c *Console) Print(v ...any) {
	fmt.Fprint(c.out, v...)
}

// ReadLine returns the next input line without its terminator. A final line
// without a terminator is returned as is; io.EOF is only reported when no
// data is left.
func (c *Console) ReadLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r"), nil
		}
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// ReadInt reads a line and parses it as a decimal integer. ok is false when
// the line holds no number.
func (c *Console) ReadInt() (n int, ok bool, err error) {
	line, err := c.ReadLine()
	if err != nil {
		return 0, false, err
	}
	n, convErr := strconv.Atoi(strings.TrimSpace(line))
	if convErr != nil {
		return 0, false, nil
	}
	return n, true, nil
}

// WaitEnter discards input up to and including the next line terminator.
func (c *Console) WaitEnter() error {
	_, err := c.ReadLine()
	return err
}

func (c *Console) Clear() {
	if c.clear {
		io.WriteString(c.out, clearSequence)
	}
}

// Align selects the padding side of a table cell.
type Align int

const (
	Left Align = iota
	Right
)

// Cell is one fixed-width table column. A zero width prints the value as is.
type Cell struct {
	Width int
	Align Align
	Value any
}

func L(width int, value any) Cell { return Cell{Width: width, Align: Left, Value: value} }

func R(width int, value any) Cell { return Cell{Width: width, Align: Right, Value: value} }

// Table writes cells back to back, padding each to its width.
func (c *Console) Table(cells ...Cell) {
	for _, cell := range cells {
		c.Print(FormatCell(cell))
	}
}

func FormatCell(cell Cell) string {
	if cell.Align == Right {
		return fmt.Sprintf("%*v", cell.Width, cell.Value)
	}
	return fmt.Sprintf("%-*v", cell.Width, cell.Value)
}
