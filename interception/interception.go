// Package interception routes every failure reported by the test engine into the
// failures.Sink of the case run that reported it.
//
// Install must be called once before any tests run. It cannot be undone.
package interception

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/launchdarkly/go-test-reporter/failures"
	"github.com/launchdarkly/go-test-reporter/framework"
)

// ErrInstall is wrapped by the error returned from Install when the hooks could not be set.
var ErrInstall = errors.New("unable to install failure interception")

var (
	installOnce sync.Once
	installErr  error
	installed   int32
)

// Install sets the process-wide failure hooks. Only the first call has any effect; later
// calls return the same result.
func Install() error {
	installOnce.Do(func() {
		if err := framework.SetFailureHooks(recorder{}); err != nil {
			installErr = fmt.Errorf("%w: %s", ErrInstall, err)
			return
		}
		atomic.StoreInt32(&installed, 1)
	})
	return installErr
}

// Installed reports whether a call to Install has succeeded.
func Installed() bool {
	return atomic.LoadInt32(&installed) == 1
}

type recorder struct{}

func (recorder) OnExpectedFailure(run *framework.CaseRun, message, sourceFile string, sourceLine uint) {
	if sink := sinkFor(run); sink != nil {
		sink.Append(failures.NewExpected(message, sourceFile, sourceLine))
	}
}

func (recorder) OnUnexpectedFailure(run *framework.CaseRun, rawDescription string) {
	if sink := sinkFor(run); sink != nil {
		sink.Append(failures.NewUnexpected(rawDescription))
	}
}

// sinkFor creates the run's sink on first use. The engine reports failures for a case
// one at a time, so this does not need to be synchronized.
func sinkFor(run *framework.CaseRun) *failures.Sink {
	if run == nil {
		return nil
	}
	if run.Failures == nil {
		run.Failures = &failures.Sink{}
	}
	return run.Failures
}
