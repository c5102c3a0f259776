package framework

import (
	"errors"
	"fmt"
	"runtime/debug"
	"sync/atomic"
	"time"
)

var (
	ErrNilSuite       = errors.New("no test suite to run")
	ErrAlreadyRunning = errors.New("another test run is already in progress")
)

const (
	noFailureMessage    = "test failed with no failure message"
	abnormalExitMessage = "test panicked with nil value or called runtime.Goexit"
)

// Options controls a call to PerformTest. The zero value runs every case with no
// progress output.
type Options struct {
	Filter     Filter
	TestLogger TestLogger
}

type environment struct {
	hooks      FailureHooks
	filter     Filter
	testLogger TestLogger
}

var running int32

// PerformTest runs every case in the suite, depth first in the order they were added,
// and returns the resulting run tree. It does not return until all cases are finished.
//
// Failures inside cases never cause an error here; they are reported to the installed
// FailureHooks and reflected in each CaseRun. An error is returned only if the run could
// not be started at all.
func PerformTest(suite *Suite, opts Options) (*SuiteRun, error) {
	if suite == nil {
		return nil, ErrNilSuite
	}
	if !atomic.CompareAndSwapInt32(&running, 0, 1) {
		return nil, ErrAlreadyRunning
	}
	defer atomic.StoreInt32(&running, 0)

	env := &environment{
		hooks:      currentFailureHooks(),
		filter:     opts.Filter,
		testLogger: opts.TestLogger,
	}
	if env.testLogger == nil {
		env.testLogger = nullTestLogger{}
	}
	return env.performSuite(suite, TestID{}), nil
}

func (env *environment) performSuite(s *Suite, id TestID) *SuiteRun {
	run := &SuiteRun{Suite: s, id: id}
	start := time.Now()
	for _, test := range s.tests {
		switch tt := test.(type) {
		case *Suite:
			sub := env.performSuite(tt, id.Child(tt.name))
			if len(sub.Runs) == 0 && len(tt.tests) != 0 {
				continue // every case was filtered out
			}
			run.Runs = append(run.Runs, sub)
		case *Case:
			caseID := id.Child(tt.name)
			if env.filter != nil && !env.filter(caseID) {
				env.testLogger.TestSkipped(caseID, "excluded by filter parameters")
				continue
			}
			run.Runs = append(run.Runs, env.performCase(tt, caseID))
		}
	}
	run.duration = time.Since(start)
	return run
}

func (env *environment) performCase(c *Case, id TestID) *CaseRun {
	run := &CaseRun{Case: c, id: id}
	env.testLogger.TestStarted(id)

	t := &T{env: env, caseRun: run}
	start := time.Now()
	t.run(c.action)
	run.duration = time.Since(start)
	run.debugOutput = t.debugLogger.Output()

	if run.skipped {
		env.testLogger.TestSkipped(id, run.skipReason)
	} else {
		env.testLogger.TestFinished(id, run.failed, run.debugOutput)
	}
	return run
}

// T is the execution context of one case, similar to *testing.T. It implements
// require.TestingT, so the assert and require packages can be used with it.
type T struct {
	env         *environment
	caseRun     *CaseRun
	debugLogger CapturingLogger
	deferred    []func()
}

func (t *T) run(action func(*T)) {
	if action != nil {
		t.guard(func() { action(t) })
	}
	for len(t.deferred) > 0 {
		f := t.deferred[len(t.deferred)-1]
		t.deferred = t.deferred[:len(t.deferred)-1]
		t.guard(f)
	}
}

// guard runs f, turning a panic other than FailNow or Skip into an unexpected failure.
// f runs on its own goroutine, which guard waits for, so that a call to runtime.Goexit
// ends only f and not the run.
func (t *T) guard(f func()) {
	done := make(chan struct{})
	go func() {
		defer close(done)
		finished := false
		defer func() {
			r := recover()
			if r == nil {
				if !finished {
					t.unexpectedFailure(abnormalExitMessage + "\n" + string(debug.Stack()))
				}
				return
			}
			if signal, ok := r.(*T); ok && signal == t {
				if !t.caseRun.skipped && !t.caseRun.failed {
					t.expectedFailure(noFailureMessage, "", 0)
				}
				return
			}
			t.unexpectedFailure(fmt.Sprintf("%v\n%s", r, debug.Stack()))
		}()
		f()
		finished = true
	}()
	<-done
}

func (t *T) expectedFailure(message, file string, line uint) {
	t.caseRun.failed = true
	t.env.testLogger.TestError(t.caseRun.id, errors.New(message))
	if t.env.hooks != nil {
		t.env.hooks.OnExpectedFailure(t.caseRun, message, file, line)
	}
}

func (t *T) unexpectedFailure(rawDescription string) {
	t.caseRun.failed = true
	t.env.testLogger.TestError(t.caseRun.id, errors.New(rawDescription))
	if t.env.hooks != nil {
		t.env.hooks.OnUnexpectedFailure(t.caseRun, rawDescription)
	}
}

// ID returns the identifier of the running case.
func (t *T) ID() TestID {
	return t.caseRun.id
}

// Name returns the slash-separated path of the running case.
func (t *T) Name() string {
	return t.caseRun.id.String()
}

// Errorf records an assertion failure and lets the case continue.
func (t *T) Errorf(format string, args ...interface{}) {
	file, line := callerLocation()
	t.expectedFailure(reformatFailureMessage(fmt.Sprintf(format, args...)), file, line)
}

// FailNow stops the case immediately. Deferred functions still run.
func (t *T) FailNow() {
	panic(t)
}

func (t *T) Fatalf(format string, args ...interface{}) {
	file, line := callerLocation()
	t.expectedFailure(reformatFailureMessage(fmt.Sprintf(format, args...)), file, line)
	t.FailNow()
}

// Helper exists so that testify treats T like *testing.T; source locations are computed
// by skipping assertion library frames instead.
func (t *T) Helper() {}

// Skip stops the case and marks it skipped. Failures recorded before the call are kept.
func (t *T) Skip() {
	t.caseRun.skipped = true
	panic(t)
}

func (t *T) SkipWithReason(reason string) {
	t.caseRun.skipReason = reason
	t.Skip()
}

// Defer schedules f to run after the case body, even if it fails or panics. Deferred
// functions run in reverse order.
func (t *T) Defer(f func()) {
	if f != nil {
		t.deferred = append(t.deferred, f)
	}
}

// Debug adds a message to the case's debug output.
func (t *T) Debug(message string, args ...interface{}) {
	t.debugLogger.Printf(message, args...)
}

func (t *T) DebugLogger() Logger {
	return &t.debugLogger
}
