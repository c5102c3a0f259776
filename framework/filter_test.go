package framework_test

import (
	"bytes"
	"testing"

	"github.com/launchdarkly/go-test-reporter/framework"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeID(path ...string) framework.TestID {
	return framework.TestID{Path: path}
}

func TestRegexFiltersWithNoPatternsMatchEverything(t *testing.T) {
	var filters framework.RegexFilters
	assert.False(t, filters.IsDefined())
	assert.True(t, filters.AsFilter(makeID("Math", "testAddPasses")))
}

func TestRegexFiltersMustMatch(t *testing.T) {
	var filters framework.RegexFilters
	require.NoError(t, filters.MustMatch.Set("^Math/"))
	require.NoError(t, filters.MustMatch.Set("Crash$"))
	assert.True(t, filters.AsFilter(makeID("Math", "testAddPasses")))
	assert.True(t, filters.AsFilter(makeID("Other", "testCrash")))
	assert.False(t, filters.AsFilter(makeID("Other", "testAddPasses")))
}

func TestRegexFiltersMustNotMatch(t *testing.T) {
	var filters framework.RegexFilters
	require.NoError(t, filters.MustNotMatch.Set("Fails"))
	assert.True(t, filters.AsFilter(makeID("Math", "testAddPasses")))
	assert.False(t, filters.AsFilter(makeID("Math", "testAddFails")))
}

func TestRegexListRejectsInvalidPattern(t *testing.T) {
	var list framework.RegexList
	err := list.Set("(")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid regex")
	assert.False(t, list.IsDefined())
}

func TestPrintFilterDescription(t *testing.T) {
	var buf bytes.Buffer
	framework.PrintFilterDescription(&buf, framework.RegexFilters{})
	assert.Equal(t, "", buf.String())

	var filters framework.RegexFilters
	require.NoError(t, filters.MustMatch.Set("a"))
	require.NoError(t, filters.MustMatch.Set("b"))
	require.NoError(t, filters.MustNotMatch.Set("c"))
	framework.PrintFilterDescription(&buf, filters)
	assert.Equal(t, "Some tests will be skipped based on the filter criteria for this test run:\n"+
		`  skip any not matching "a" or "b"`+"\n"+
		`  skip any matching "c"`+"\n\n", buf.String())
}
