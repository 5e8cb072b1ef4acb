// Package prompt reads interactive answers from the user.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompter writes prompts and reads the user's replies from a single input
// stream. Reads are buffered, so one Prompter must serve every prompt of an
// invocation.
type Prompter struct {
	in     *bufio.Reader
	out    io.Writer
	errOut io.Writer
	fd     int // terminal file descriptor, -1 when in is not a terminal
}

// New creates a Prompter. Line prompts go to out; secret prompts go to errOut
// so they never mix with command output.
func New(in io.Reader, out, errOut io.Writer) *Prompter {
	fd := -1
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fd = int(f.Fd())
	}
	return &Prompter{
		in:     bufio.NewReader(in),
		out:    out,
		errOut: errOut,
		fd:     fd,
	}
}

// ReadLine writes prompt followed by a newline, then returns the next input
// line exactly as typed, terminator included. At end of input the partial
// line read so far is returned, which may be empty.
func (p *Prompter) ReadLine(prompt string) (string, error) {
	if _, err := fmt.Fprintln(p.out, prompt); err != nil {
		return "", fmt.Errorf("writing prompt: %w", err)
	}

	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return line, nil
}

// ReadSecret writes prompt and reads a value without echo when the input is
// a terminal. The line terminator is removed.
func (p *Prompter) ReadSecret(prompt string) (string, error) {
	if _, err := fmt.Fprint(p.errOut, prompt); err != nil {
		return "", fmt.Errorf("writing prompt: %w", err)
	}

	if p.fd >= 0 {
		secret, err := term.ReadPassword(p.fd)
		fmt.Fprintln(p.errOut)
		if err != nil {
			return "", fmt.Errorf("reading secret: %w", err)
		}
		return string(secret), nil
	}

	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading secret: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
