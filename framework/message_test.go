package framework_test

import (
	"testing"

	"github.com/launchdarkly/go-test-reporter/framework"

	"github.com/stretchr/testify/assert"
)

func TestReformatFailureMessage(t *testing.T) {
	for _, params := range []struct {
		name, input, expected string
	}{
		{"plain message", "values differ", "values differ"},
		{"plain message with surrounding space", "\n  values differ \n", "values differ"},
		{
			"testify with user message",
			"\n\tError Trace:\tmath_test.go:42\n" +
				"\tError:      \tNot equal: \n" +
				"\t            \texpected: 3\n" +
				"\t            \tactual  : 2\n" +
				"\tTest:       \tMath/testAddFails\n" +
				"\tMessages:   \t1+1 != 3\n",
			"1+1 != 3",
		},
		{
			"testify without user message",
			"\n\tError Trace:\tmath_test.go:42\n" +
				"\tError:      \tNot equal: \n" +
				"\t            \texpected: 3\n" +
				"\t            \tactual  : 2\n" +
				"\t            \t\n" +
				"\t            \tDiff:\n" +
				"\t            \t--- Expected\n" +
				"\t            \t+++ Actual\n" +
				"\tTest:       \tMath/testAddFails\n",
			"Not equal: expected: 3 actual : 2",
		},
		{
			"testify with multi-line trace",
			"\n\tError Trace:\ta.go:1\n" +
				"\t\t\tb.go:2\n" +
				"\tError:      \tShould be true\n",
			"Should be true",
		},
	} {
		t.Run(params.name, func(t *testing.T) {
			assert.Equal(t, params.expected, framework.ReformatFailureMessage(params.input))
		})
	}
}
