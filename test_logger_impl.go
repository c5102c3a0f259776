package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/launchdarkly/go-test-reporter/framework"
)

// ConsoleTestLogger shows the progress of a run. It writes to standard error so that the
// report on standard output is unaffected.
type ConsoleTestLogger struct {
	Out                  io.Writer
	Verbose              bool
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
}

func (c *ConsoleTestLogger) TestStarted(id framework.TestID) {
	if c.Verbose {
		fmt.Fprintf(c.Out, "[%s]\n", id)
	}
}

func (c *ConsoleTestLogger) TestError(id framework.TestID, err error) {
	if !c.Verbose {
		return
	}
	for _, line := range strings.Split(err.Error(), "\n") {
		fmt.Fprintf(c.Out, "  %s\n", line)
	}
}

func (c *ConsoleTestLogger) TestFinished(id framework.TestID, failed bool, debugOutput framework.CapturedOutput) {
	if failed && c.Verbose {
		fmt.Fprintf(c.Out, "  FAILED: %s\n", id)
	}
	if len(debugOutput) > 0 &&
		((failed && c.DebugOutputOnFailure) || (!failed && c.DebugOutputOnSuccess)) {
		if !c.Verbose {
			fmt.Fprintf(c.Out, "[%s]\n", id)
		}
		debugOutput.Dump(c.Out, "    DEBUG ")
	}
}

func (c *ConsoleTestLogger) TestSkipped(id framework.TestID, reason string) {
	if !c.Verbose {
		return
	}
	if reason == "" {
		fmt.Fprintf(c.Out, "  SKIPPED: %s\n", id)
	} else {
		fmt.Fprintf(c.Out, "  SKIPPED: %s (%s)\n", id, reason)
	}
}
