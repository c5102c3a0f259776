package demosuite

import (
	"testing"

	"github.com/launchdarkly/go-test-reporter/framework"
	"github.com/launchdarkly/go-test-reporter/interception"
	"github.com/launchdarkly/go-test-reporter/reporting"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func perform(t *testing.T, suite *framework.Suite) *framework.SuiteRun {
	require.NoError(t, interception.Install())
	run, err := framework.PerformTest(framework.NewSuite("root", suite), framework.Options{})
	require.NoError(t, err)
	return run
}

func TestSuitesAreRegistered(t *testing.T) {
	var names []string
	for _, test := range framework.DefaultSuite().Tests() {
		names = append(names, test.Name())
	}
	assert.Equal(t, []string{"Math", "HTTP"}, names)
}

func TestMathSuiteOutcome(t *testing.T) {
	run := perform(t, MathSuite())

	cases := run.SuiteRuns()[0].CaseRuns()
	require.Len(t, cases, 3)
	assert.True(t, reporting.CaseSucceeded(cases[0]))
	require.Equal(t, 1, cases[1].Failures.Len())
	assert.Equal(t, "1+1 != 3", cases[1].Failures.Records()[0].Message())
	assert.True(t, cases[1].Failures.Records()[0].Expected())
	require.Equal(t, 1, cases[2].Failures.Len())
	assert.Contains(t, cases[2].Failures.Records()[0].Message(), "index out of range")
	assert.False(t, cases[2].Failures.Records()[0].Expected())
	assert.Len(t, cases[2].DebugOutput(), 1)
}

func TestHTTPSuitePasses(t *testing.T) {
	run := perform(t, HTTPSuite())

	assert.Equal(t, 3, run.ExecutionCount())
	for _, c := range run.SuiteRuns()[0].CaseRuns() {
		assert.True(t, reporting.CaseSucceeded(c), "%s: %v", c.ID(), c.Failures.Records())
	}
}
