package main

import (
	"flag"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/launchdarkly/go-test-reporter/framework"

	"github.com/alessio/shellescape"
)

type commandParams struct {
	filters  framework.RegexFilters
	debug    bool
	debugAll bool
	verbose  bool
	color    bool
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ContinueOnError)
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.BoolVar(&c.debug, "debug", false, "show debug output for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "show debug output for all tests")
	fs.BoolVar(&c.verbose, "verbose", false, "show progress of each test on standard error")
	fs.BoolVar(&c.color, "color", false, "use colors in the report")

	if err := fs.Parse(args[1:]); err != nil {
		return false // the FlagSet has already printed the error and usage
	}
	if fs.NArg() != 0 {
		fmt.Fprintf(os.Stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		fs.Usage()
		return false
	}
	return true
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}

// rerunCommand builds a command line that runs only the given tests.
func rerunCommand(program string, ids []framework.TestID) string {
	var b commandBuilder
	b.add(program)
	for _, id := range ids {
		b.add("-run", "^"+regexp.QuoteMeta(id.String())+"$")
	}
	return b.String()
}
