package framework_test

import (
	"strings"
	"testing"

	"github.com/launchdarkly/go-test-reporter/framework"
)

type hookCall struct {
	id         string
	expected   bool
	message    string
	sourceFile string
	sourceLine uint
}

type spyHooks struct {
	calls []hookCall
}

func (s *spyHooks) OnExpectedFailure(run *framework.CaseRun, message, sourceFile string, sourceLine uint) {
	s.calls = append(s.calls, hookCall{id: run.ID().String(), expected: true, message: message,
		sourceFile: sourceFile, sourceLine: sourceLine})
}

func (s *spyHooks) OnUnexpectedFailure(run *framework.CaseRun, rawDescription string) {
	s.calls = append(s.calls, hookCall{id: run.ID().String(), message: rawDescription})
}

func (s *spyHooks) messages() []string {
	var ret []string
	for _, c := range s.calls {
		ret = append(ret, strings.SplitN(c.message, "\n", 2)[0])
	}
	return ret
}

func withSpyHooks(t *testing.T) *spyHooks {
	spy := &spyHooks{}
	restore := framework.SwapFailureHooks(spy)
	t.Cleanup(restore)
	return spy
}

func perform(t *testing.T, suite *framework.Suite, opts framework.Options) *framework.SuiteRun {
	run, err := framework.PerformTest(suite, opts)
	if err != nil {
		t.Fatalf("PerformTest failed: %s", err)
	}
	return run
}

type recordingTestLogger struct {
	events []string
}

func (l *recordingTestLogger) TestStarted(id framework.TestID) {
	l.events = append(l.events, "started "+id.String())
}

func (l *recordingTestLogger) TestError(id framework.TestID, err error) {
	l.events = append(l.events, "error "+id.String())
}

func (l *recordingTestLogger) TestFinished(id framework.TestID, failed bool, debugOutput framework.CapturedOutput) {
	if failed {
		l.events = append(l.events, "failed "+id.String())
	} else {
		l.events = append(l.events, "passed "+id.String())
	}
}

func (l *recordingTestLogger) TestSkipped(id framework.TestID, reason string) {
	l.events = append(l.events, "skipped "+id.String()+" ("+reason+")")
}
