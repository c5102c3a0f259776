// Package reporting renders the result of a test run as a human-readable report.
//
// Suites and cases are reported in the order they ran. A nested suite's header is its
// name prefixed by the names of its named enclosing suites, such as "Outer/Inner".
//
// The text format is relied on by log scrapers, so it does not change with options other
// than color:
//
//	<suiteName>
//
//	<marker>  <caseName>
//		<failure description>
//	...
//	 Executed <N> tests, with <F> failures (<F> unexpected) in <D.DDD> seconds
package reporting

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/launchdarkly/go-test-reporter/framework"
	"github.com/launchdarkly/go-test-reporter/suiterunner"

	"github.com/fatih/color"
)

const (
	PassMarker = "✅"
	FailMarker = "❌"
)

// Reporter writes reports to an io.Writer.
type Reporter struct {
	out          io.Writer
	failureStyle *color.Color
	passStyle    *color.Color
	headerStyle  *color.Color
}

// Option configures a Reporter.
type Option func(*Reporter)

// WithColor turns ANSI styling of headers, failures and the summary on or off. It is off
// by default. Stripping the escape codes from colored output gives the plain output.
func WithColor(enabled bool) Option {
	return func(r *Reporter) {
		for _, c := range []*color.Color{r.failureStyle, r.passStyle, r.headerStyle} {
			if enabled {
				c.EnableColor()
			} else {
				c.DisableColor()
			}
		}
	}
}

func New(out io.Writer, opts ...Option) *Reporter {
	r := &Reporter{
		out:          out,
		failureStyle: color.New(color.FgRed),
		passStyle:    color.New(color.FgGreen),
		headerStyle:  color.New(color.Bold),
	}
	WithColor(false)(r)
	for _, o := range opts {
		o(r)
	}
	return r
}

// Report writes the report for result and returns true if no case failed.
func (r *Reporter) Report(result suiterunner.Result) bool {
	failureCount := 0
	if result.Tree != nil {
		failureCount = r.reportSuite(result.Tree, true)
	}

	summaryStyle := r.passStyle
	if failureCount != 0 {
		summaryStyle = r.failureStyle
	}
	fmt.Fprintf(r.out, "\n %s\n", summaryStyle.Sprintf(
		"Executed %d tests, with %d failures (%d unexpected) in %s seconds",
		result.ExecutionCount,
		failureCount,
		failureCount,
		FormatSeconds(result.Duration),
	))

	return failureCount == 0
}

// reportSuite prints the suite's header and then its cases and nested suites in the order
// they ran, and returns the number of failed cases. The root of the tree has no header.
func (r *Reporter) reportSuite(run *framework.SuiteRun, root bool) int {
	if header := suiteHeader(run); !root && header != "" {
		fmt.Fprintf(r.out, "%s\n\n", r.headerStyle.Sprint(header))
	}

	failureCount := 0
	for _, child := range run.Runs {
		switch c := child.(type) {
		case *framework.CaseRun:
			if !r.reportCase(c) {
				failureCount++
			}
		case *framework.SuiteRun:
			failureCount += r.reportSuite(c, false)
		}
	}
	return failureCount
}

// suiteHeader is the suite's name, qualified by the names of any named enclosing suites
// below the root. It is "" for an unnamed suite.
func suiteHeader(run *framework.SuiteRun) string {
	if run.Name() == "" {
		return ""
	}
	var names []string
	for _, name := range run.ID().Path {
		if name != "" {
			names = append(names, name)
		}
	}
	return strings.Join(names, "/")
}

func (r *Reporter) reportCase(c *framework.CaseRun) bool {
	success := CaseSucceeded(c)
	marker := PassMarker
	if !success {
		marker = FailMarker
	}
	if c.Name() != "" {
		fmt.Fprintf(r.out, "%s  %s\n", marker, c.Name())
	}
	if success {
		return true
	}
	for _, f := range c.Failures.Records() {
		fmt.Fprintf(r.out, "\t%s\n", r.failureStyle.Sprint(f))
	}
	return false
}

// CaseSucceeded is true if no failures were recorded for the case. An empty sink counts
// as success; the engine's own failed flag is not consulted.
func CaseSucceeded(c *framework.CaseRun) bool {
	return c.Failures.Empty()
}

// CountFailures returns the number of failed cases anywhere in the tree.
func CountFailures(run *framework.SuiteRun) int {
	return len(FailedCases(run))
}

// FailedCases returns the IDs of failed cases in report order.
func FailedCases(run *framework.SuiteRun) []framework.TestID {
	if run == nil {
		return nil
	}
	var ret []framework.TestID
	for _, child := range run.Runs {
		switch c := child.(type) {
		case *framework.CaseRun:
			if !CaseSucceeded(c) {
				ret = append(ret, c.ID())
			}
		case *framework.SuiteRun:
			ret = append(ret, FailedCases(c)...)
		}
	}
	return ret
}

// FormatSeconds renders d in seconds with exactly three decimal places.
func FormatSeconds(d time.Duration) string {
	return fmt.Sprintf("%.3f", d.Seconds())
}
