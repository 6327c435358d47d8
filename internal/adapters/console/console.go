// Package console is the interactive front-end: token-based prompts over a
// caller-supplied reader/writer pair, so tests can script whole sessions.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Cancel sentinel accepted at any transaction field.
func IsCancel(s string) bool { return s == "e" || s == "E" }

type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Console {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)
	return &Console{in: sc, out: out}
}

// Out exposes the output sink for Describe-style rendering.
func (c *Console) Out() io.Writer { return c.out }

func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// ReadToken prints prompt and reads the next whitespace-separated token.
// ok is false when input is exhausted.
func (c *Console) ReadToken(prompt string) (string, bool) {
	if prompt != "" {
		fmt.Fprint(c.out, prompt)
	}
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}

// ReadField is ReadToken with the cancel sentinel applied: entering e/E
// aborts the surrounding flow.
func (c *Console) ReadField(prompt string) (string, bool) {
	tok, ok := c.ReadToken(prompt)
	if !ok || IsCancel(tok) {
		return "", false
	}
	return tok, true
}

// ReadInt reads one token and parses it. A non-numeric token reads as
// not-ok, which callers treat like a cancel.
func (c *Console) ReadInt(prompt string) (int, bool) {
	tok, ok := c.ReadToken(prompt)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, false
	}
	return n, true
}
