// Package suiterunner runs a whole test suite through the framework engine in a single pass.
package suiterunner

import (
	"fmt"
	"time"

	"github.com/launchdarkly/go-test-reporter/framework"
)

// Runner runs the suite returned by Discover. The zero value runs framework.DefaultSuite
// with no filter and no progress output.
type Runner struct {
	Discover   func() *framework.Suite
	Filter     framework.Filter
	TestLogger framework.TestLogger
}

// Result is the outcome of one run: the result tree, the number of cases that were
// executed, and the total wall-clock time.
type Result struct {
	Tree           *framework.SuiteRun
	ExecutionCount int
	Duration       time.Duration
}

// Run executes every case once and returns when they have all finished. Failures inside
// cases are not errors; an error means the engine could not run at all.
func (r Runner) Run() (Result, error) {
	discover := r.Discover
	if discover == nil {
		discover = framework.DefaultSuite
	}
	tree, err := framework.PerformTest(discover(), framework.Options{
		Filter:     r.Filter,
		TestLogger: r.TestLogger,
	})
	if err != nil {
		return Result{}, fmt.Errorf("could not run test suite: %w", err)
	}
	return Result{
		Tree:           tree,
		ExecutionCount: tree.ExecutionCount(),
		Duration:       tree.TestDuration(),
	}, nil
}
