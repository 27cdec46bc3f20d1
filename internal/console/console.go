// Package console provides the human-readable output channel of the checks.

package console

import (
	"fmt"
	"io"
	"os"
	"sync"
	"voice-api-smoke/internal/constants"
)

// Console writes plain diagnostic lines.
type Console struct {
	mu sync.Mutex
	w  io.Writer
}

// NewConsole initializes a Console writing to stdout.
func NewConsole() *Console {
	return New(os.Stdout)
}

// New initializes a Console writing to w.
func New(w io.Writer) *Console {
	return &Console{w: w}
}

// Println writes its operands followed by a newline.
func (c *Console) Println(a ...interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = fmt.Fprintln(c.w, a...)
}

// Printf writes a formatted line; a trailing newline is added.
func (c *Console) Printf(format string, a ...interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = fmt.Fprintf(c.w, format+"\n", a...)
}

// Begin prints a section header and returns a release func that prints the
// terminator line. The terminator is printed at most once per section.
func (c *Console) Begin(title string) func() {
	c.Printf("--- Testing %s ---", title)
	var once sync.Once
	return func() {
		once.Do(func() { c.Println(constants.Terminator) })
	}
}

// Writer returns the underlying writer for bulk output such as summary tables.
func (c *Console) Writer() io.Writer { return c.w }
