// Package console provides the line-oriented Prompter used by the rating flow.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/huangsam/rategame/internal/contract"
)

// ErrInputClosed is returned by Ask when the input stream has no more lines.
var ErrInputClosed = errors.New("input closed")

// Console reads answers line by line from an input stream and writes
// prompts and messages to an output stream. Lines have no length limit.
type Console struct {
	reader *bufio.Reader
	out    io.Writer
}

var _ contract.Prompter = &Console{} // Compile-time check

// New creates a console over the given streams.
func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// Ask writes prompt and returns the next trimmed input line.
func (c *Console) Ask(prompt string) (string, error) {
	if prompt != "" {
		_, _ = fmt.Fprint(c.out, prompt)
	}
	line, err := c.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		// A final line without a newline is still an answer
		if line == "" {
			return "", ErrInputClosed
		}
	}
	return strings.TrimSpace(line), nil
}

// Say writes its operands followed by a newline.
func (c *Console) Say(a ...any) {
	_, _ = fmt.Fprintln(c.out, a...)
}

// Sayf writes formatted output.
func (c *Console) Sayf(format string, a ...any) {
	_, _ = fmt.Fprintf(c.out, format, a...)
}

// Out returns the output writer.
func (c *Console) Out() io.Writer {
	return c.out
}
