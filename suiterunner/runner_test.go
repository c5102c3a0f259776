package suiterunner

import (
	"errors"
	"testing"

	"github.com/launchdarkly/go-test-reporter/framework"
	"github.com/launchdarkly/go-test-reporter/interception"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mathSuite() *framework.Suite {
	return framework.NewSuite("root", framework.NewSuite("Math",
		framework.NewCase("testAddPasses", func(t *framework.T) {
			assert.Equal(t, 2, 1+1)
		}),
		framework.NewCase("testAddFails", func(t *framework.T) {
			assert.Equal(t, 3, 1+1, "1+1 != 3")
		}),
		framework.NewCase("testCrash", func(t *framework.T) {
			var s []int
			_ = s[1]
		}),
	))
}

func TestRunReturnsTreeCountAndDuration(t *testing.T) {
	require.NoError(t, interception.Install())

	result, err := Runner{Discover: mathSuite}.Run()

	require.NoError(t, err)
	require.NotNil(t, result.Tree)
	assert.Equal(t, 3, result.ExecutionCount)
	assert.Equal(t, result.Tree.TestDuration(), result.Duration)
	assert.True(t, result.Duration >= 0)

	cases := result.Tree.SuiteRuns()[0].CaseRuns()
	require.Len(t, cases, 3)
	assert.True(t, cases[0].Failures.Empty())
	assert.Equal(t, 1, cases[1].Failures.Len())
	require.Equal(t, 1, cases[2].Failures.Len())
	assert.Contains(t, cases[2].Failures.Records()[0].Message(), "index out of range")
}

func TestRunAppliesFilter(t *testing.T) {
	require.NoError(t, interception.Install())
	var filters framework.RegexFilters
	require.NoError(t, filters.MustMatch.Set("Passes"))

	result, err := Runner{Discover: mathSuite, Filter: filters.AsFilter}.Run()

	require.NoError(t, err)
	assert.Equal(t, 1, result.ExecutionCount)
}

func TestRunFailsWhenThereIsNoSuite(t *testing.T) {
	_, err := Runner{Discover: func() *framework.Suite { return nil }}.Run()

	require.Error(t, err)
	assert.True(t, errors.Is(err, framework.ErrNilSuite))
}

func TestZeroValueRunsDefaultSuite(t *testing.T) {
	result, err := Runner{}.Run()

	require.NoError(t, err)
	assert.Equal(t, framework.DefaultSuiteName, result.Tree.Name())
	assert.Equal(t, 0, result.ExecutionCount)
}
