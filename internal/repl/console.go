// Package repl runs the interactive query loop over a line-oriented console.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

// lineResult is one line, or the terminal error, read from the input stream.
type lineResult struct {
	text string
	err  error
}

// Console provides line-based reading and prompt writing over plain streams.
// Input is scanned on a background goroutine so reads can be abandoned when
// their context is cancelled.
type Console struct {
	in    io.Reader
	out   io.Writer
	once  sync.Once
	lines chan lineResult
}

// NewConsole wraps in and out.
//
// Postcondition: Returns a Console ready for reading and writing. Nothing is read
// from in until the first ReadLine.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: in, out: out}
}

func (c *Console) startReader() {
	c.lines = make(chan lineResult)
	go func() {
		defer close(c.lines)
		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			c.lines <- lineResult{text: strings.TrimRight(scanner.Text(), "\r")}
		}
		if err := scanner.Err(); err != nil {
			c.lines <- lineResult{err: err}
		}
	}()
}

// ReadLine reads the next line without its terminator.
//
// Postcondition: Returns the line, io.EOF at end of input, ctx.Err() when ctx is
// cancelled first, or a read error. A line arriving after cancellation is kept
// for the next call.
func (c *Console) ReadLine(ctx context.Context) (string, error) {
	c.once.Do(c.startReader)
	if err := ctx.Err(); err != nil {
		return "", err
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r, ok := <-c.lines:
		if !ok {
			return "", io.EOF
		}
		return r.text, r.err
	}
}

// Prompt writes prompt and reads the answer.
func (c *Console) Prompt(ctx context.Context, prompt string) (string, error) {
	if err := c.Write(prompt); err != nil {
		return "", err
	}
	return c.ReadLine(ctx)
}

// Write writes text as is.
func (c *Console) Write(text string) error {
	_, err := io.WriteString(c.out, text)
	return err
}

// WriteLine writes text followed by a newline.
func (c *Console) WriteLine(text string) error {
	_, err := fmt.Fprintln(c.out, text)
	return err
}
