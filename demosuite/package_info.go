// Package demosuite registers the example suites run by the go-test-reporter command.
//
// The "Math" suite deliberately contains a failing assertion and a crashing case so that
// the report shows every kind of line it can produce.
package demosuite

import "github.com/launchdarkly/go-test-reporter/framework"

func init() {
	framework.Register(MathSuite(), HTTPSuite())
}
