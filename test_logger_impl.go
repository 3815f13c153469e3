package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/yoree-platform/api-smoke-tests/framework"
)

// ConsoleTestLogger prints the test events that the checker's own report does not cover:
// skipped tests, and captured debug output if enabled.
type ConsoleTestLogger struct {
	Out                  io.Writer
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
}

func (c *ConsoleTestLogger) TestStarted(id framework.TestID) {}

func (c *ConsoleTestLogger) TestError(id framework.TestID, err error) {
	if !c.DebugOutputOnFailure {
		return
	}
	for _, line := range strings.Split(err.Error(), "\n") {
		fmt.Fprintf(c.Out, "  %s\n", line)
	}
}

func (c *ConsoleTestLogger) TestFinished(id framework.TestID, failed bool, debugOutput framework.CapturedOutput) {
	if len(debugOutput) > 0 &&
		((failed && c.DebugOutputOnFailure) || (!failed && c.DebugOutputOnSuccess)) {
		debugOutput.Dump(c.Out, "    DEBUG ")
	}
}

func (c *ConsoleTestLogger) TestSkipped(id framework.TestID, reason string) {
	if reason == "" {
		fmt.Fprintf(c.Out, "\nSKIPPED: %s\n", id)
	} else {
		fmt.Fprintf(c.Out, "\nSKIPPED: %s (%s)\n", id, reason)
	}
}
