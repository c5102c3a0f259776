package framework

import (
	"strings"
	"time"

	"github.com/launchdarkly/go-test-reporter/failures"
)

// TestRun is the result of running a Test: either a *SuiteRun or a *CaseRun.
type TestRun interface {
	ID() TestID
	Name() string
	ExecutionCount() int
	TestDuration() time.Duration
}

// SuiteRun is the result of running a Suite. Runs holds the results of its children in
// execution order; children excluded by a filter are absent.
type SuiteRun struct {
	Suite    *Suite
	Runs     []TestRun
	id       TestID
	duration time.Duration
}

// CaseRun is the result of running a Case.
//
// Failures is nil until some failure is recorded for this run. It is populated by whatever
// FailureHooks are installed, not by the engine itself.
type CaseRun struct {
	Case        *Case
	Failures    *failures.Sink
	id          TestID
	failed      bool
	skipped     bool
	skipReason  string
	duration    time.Duration
	debugOutput CapturedOutput
}

func (r *SuiteRun) ID() TestID { return r.id }

func (r *SuiteRun) Name() string { return r.Suite.Name() }

// ExecutionCount is the number of cases that were executed anywhere beneath this suite.
func (r *SuiteRun) ExecutionCount() int {
	n := 0
	for _, child := range r.Runs {
		n += child.ExecutionCount()
	}
	return n
}

func (r *SuiteRun) TestDuration() time.Duration { return r.duration }

// CaseRuns returns the direct case children of this suite run.
func (r *SuiteRun) CaseRuns() []*CaseRun {
	var ret []*CaseRun
	for _, child := range r.Runs {
		if c, ok := child.(*CaseRun); ok {
			ret = append(ret, c)
		}
	}
	return ret
}

// SuiteRuns returns the direct sub-suite children of this suite run.
func (r *SuiteRun) SuiteRuns() []*SuiteRun {
	var ret []*SuiteRun
	for _, child := range r.Runs {
		if s, ok := child.(*SuiteRun); ok {
			ret = append(ret, s)
		}
	}
	return ret
}

func (r *CaseRun) ID() TestID { return r.id }

func (r *CaseRun) Name() string { return r.Case.Name() }

func (r *CaseRun) ExecutionCount() int { return 1 }

func (r *CaseRun) TestDuration() time.Duration { return r.duration }

// Failed is the engine's own bookkeeping: true if the case reported any failure, regardless
// of whether hooks recorded it anywhere.
func (r *CaseRun) Failed() bool { return r.failed }

func (r *CaseRun) Skipped() bool { return r.skipped }

func (r *CaseRun) SkipReason() string { return r.skipReason }

// DebugOutput returns whatever the case logged with T.Debug.
func (r *CaseRun) DebugOutput() CapturedOutput { return r.debugOutput }

// TestID identifies a test by the names of its enclosing suites and its own name. The root
// suite passed to PerformTest is not part of the path.
type TestID struct {
	Path []string
}

// Child returns the ID of a test nested directly under this one.
func (t TestID) Child(name string) TestID {
	path := make([]string, 0, len(t.Path)+1)
	return TestID{Path: append(append(path, t.Path...), name)}
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}
