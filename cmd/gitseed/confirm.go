package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Confirmer asks the user to approve the run before any history is written
type Confirmer interface {
	// Confirm asks a yes/no question and returns the user's answer
	Confirm(question string) bool
}

// PromptConfirmer is the standard implementation of Confirmer that reads
// from stdin and writes to stdout
type PromptConfirmer struct {
	Reader io.Reader
	Writer io.Writer
}

// NewPromptConfirmer creates a PromptConfirmer bound to stdin and stdout
func NewPromptConfirmer() *PromptConfirmer {
	return &PromptConfirmer{
		Reader: os.Stdin,
		Writer: os.Stdout,
	}
}

// Confirm asks a yes/no question and returns the user's answer
func (c *PromptConfirmer) Confirm(question string) bool {
	_, _ = fmt.Fprintf(c.Writer, "%s (y/n): ", question)

	reader := bufio.NewReader(c.Reader)
	answer, err := reader.ReadString('\n')
	if err != nil {
		// On error, default to 'no'
		return false
	}

	answer = strings.TrimSpace(answer)
	return strings.HasPrefix(strings.ToLower(answer), "y")
}

// DeclineConfirmer always answers no without prompting. It is installed
// when stdin is not a terminal, where waiting on a prompt would hang.
type DeclineConfirmer struct{}

// Confirm always returns false without prompting
func (c DeclineConfirmer) Confirm(question string) bool {
	return false
}
