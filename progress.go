package cssprune

import (
	"fmt"
	"io"
	"sync"
)

// ProgressObserver receives progress events from parallel batch phases.
// Implementations must be safe for concurrent use; the engine calls
// ItemsProcessed from multiple workers.
type ProgressObserver interface {
	PhaseStarted(phase string, total int)
	ItemsProcessed(phase string, done, total int)
	PhaseFinished(phase string)
}

// NopProgress discards all progress events.
type NopProgress struct{}

func (NopProgress) PhaseStarted(string, int)        {}
func (NopProgress) ItemsProcessed(string, int, int) {}
func (NopProgress) PhaseFinished(string)            {}

// ConsoleProgress renders progress events as plain text lines. It is the
// only renderer shipped with the engine; callers wanting richer displays
// implement ProgressObserver themselves.
type ConsoleProgress struct {
	mu sync.Mutex
	w  io.Writer
}

// NewConsoleProgress creates a console renderer writing to w.
func NewConsoleProgress(w io.Writer) *ConsoleProgress {
	return &ConsoleProgress{w: w}
}

func (c *ConsoleProgress) PhaseStarted(phase string, total int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.w, "%s: %d items\n", phase, total)
}

func (c *ConsoleProgress) ItemsProcessed(phase string, done, total int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.w, "   %s %d/%d\n", phase, done, total)
}

func (c *ConsoleProgress) PhaseFinished(phase string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.w, "%s complete\n", phase)
}
