package demosuite

import (
	"github.com/launchdarkly/go-test-reporter/framework"

	"github.com/stretchr/testify/assert"
)

func MathSuite() *framework.Suite {
	return framework.NewSuite("Math",
		framework.NewCase("testAddPasses", func(t *framework.T) {
			assert.Equal(t, 2, add(1, 1))
		}),
		framework.NewCase("testAddFails", func(t *framework.T) {
			assert.Equal(t, 3, add(1, 1), "1+1 != 3")
		}),
		framework.NewCase("testCrash", func(t *framework.T) {
			values := []int{1, 2}
			index := len(values)
			t.Debug("reading index %d of %v", index, values)
			_ = values[index]
		}),
	)
}

func add(a, b int) int {
	return a + b
}
