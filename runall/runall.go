// Package runall provides the single operation most callers need: run every registered
// test and print the report.
package runall

import (
	"io"
	"os"

	"github.com/launchdarkly/go-test-reporter/framework"
	"github.com/launchdarkly/go-test-reporter/interception"
	"github.com/launchdarkly/go-test-reporter/reporting"
	"github.com/launchdarkly/go-test-reporter/suiterunner"
)

// Options configures Run. The zero value runs framework.DefaultSuite with plain output.
type Options struct {
	Discover   func() *framework.Suite
	Filter     framework.Filter
	TestLogger framework.TestLogger
	Color      bool
}

// Run installs failure interception, runs the suite, and writes the report to out. It
// returns true if no case failed. An error means nothing was run, and no report is
// written.
func Run(out io.Writer, opts Options) (bool, suiterunner.Result, error) {
	if err := interception.Install(); err != nil {
		return false, suiterunner.Result{}, err
	}
	result, err := suiterunner.Runner{
		Discover:   opts.Discover,
		Filter:     opts.Filter,
		TestLogger: opts.TestLogger,
	}.Run()
	if err != nil {
		return false, suiterunner.Result{}, err
	}
	ok := reporting.New(out, reporting.WithColor(opts.Color)).Report(result)
	return ok, result, nil
}

// RunAll runs every registered test, prints the report to standard output, and returns
// true if no case failed. It panics if the tests could not be run at all.
func RunAll() bool {
	ok, _, err := Run(os.Stdout, Options{})
	if err != nil {
		panic(err)
	}
	return ok
}
