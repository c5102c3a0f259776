package framework

import (
	"errors"
	"sync"
)

var (
	ErrNilHooks       = errors.New("failure hooks must not be nil")
	ErrHooksInstalled = errors.New("a different set of failure hooks is already installed")
)

// FailureHooks receives every failure reported by a running case. Both methods are called
// synchronously on the goroutine that runs the case, and one case runs at a time.
//
// Implementations must not panic. The engine's own pass/fail bookkeeping (CaseRun.Failed)
// is updated whether or not any hooks are installed.
type FailureHooks interface {
	// OnExpectedFailure is called for an assertion failure. sourceFile is "" if the
	// location could not be determined.
	OnExpectedFailure(run *CaseRun, message string, sourceFile string, sourceLine uint)

	// OnUnexpectedFailure is called for a runtime fault; rawDescription usually includes
	// a multi-line stack trace.
	OnUnexpectedFailure(run *CaseRun, rawDescription string)
}

var (
	installedHooks FailureHooks
	hooksLock      sync.Mutex
)

// SetFailureHooks installs process-wide failure hooks. There is no way to uninstall them.
// Installing the same value again is a no-op; installing a different one is an error.
// Hooks must be comparable values, such as pointers or empty structs.
//
// Hooks take effect for the next call to PerformTest.
func SetFailureHooks(h FailureHooks) error {
	if h == nil {
		return ErrNilHooks
	}
	hooksLock.Lock()
	defer hooksLock.Unlock()
	if installedHooks != nil && installedHooks != h {
		return ErrHooksInstalled
	}
	installedHooks = h
	return nil
}

func currentFailureHooks() FailureHooks {
	hooksLock.Lock()
	defer hooksLock.Unlock()
	return installedHooks
}
