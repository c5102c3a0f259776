package main

import (
	"fmt"
	"os"

	"github.com/launchdarkly/go-test-reporter/framework"
	"github.com/launchdarkly/go-test-reporter/reporting"
	"github.com/launchdarkly/go-test-reporter/runall"

	_ "github.com/launchdarkly/go-test-reporter/demosuite"
)

func main() {
	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}

	framework.PrintFilterDescription(os.Stderr, params.filters)

	testLogger := &ConsoleTestLogger{
		Out:                  os.Stderr,
		Verbose:              params.verbose,
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}

	opts := runall.Options{TestLogger: testLogger, Color: params.color}
	if params.filters.IsDefined() {
		opts.Filter = params.filters.AsFilter
	}

	ok, result, err := runall.Run(os.Stdout, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to run tests: %s\n", err)
		os.Exit(1)
	}
	if !ok {
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "To run only the failed tests again:")
		fmt.Fprintf(os.Stderr, "  %s\n", rerunCommand(os.Args[0], reporting.FailedCases(result.Tree)))
		os.Exit(1)
	}
}
