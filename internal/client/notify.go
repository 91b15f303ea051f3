package client

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// A Notifier reports user-facing outcomes of an operation. It decouples the
// workflows from the way feedback is rendered so they stay testable.
type Notifier interface {
	// Successf reports a completed operation.
	Successf(format string, args ...any)
	// Warnf reports a skipped or partial operation.
	Warnf(format string, args ...any)
	// Failf reports a failed operation.
	Failf(format string, args ...any)
}

type console struct {
	log logrus.StdLogger
}

// NewConsoleNotifier returns a Notifier printing to stdout and mirroring
// every message to the logfile.
func NewConsoleNotifier() Notifier {
	return &console{log: NewLogger()}
}

func (c *console) Successf(format string, args ...any) {
	fmt.Printf(format+"\n", args...)
	c.log.Printf("success: "+format, args...)
}

func (c *console) Warnf(format string, args ...any) {
	fmt.Printf("warning: "+format+"\n", args...)
	c.log.Printf("warning: "+format, args...)
}

func (c *console) Failf(format string, args ...any) {
	fmt.Printf("error: "+format+"\n", args...)
	c.log.Printf("error: "+format, args...)
}
