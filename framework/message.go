package framework

import (
	"reflect"
	"regexp"
	"runtime"
	"strings"
)

const testifyPackagePrefix = "github.com/stretchr/testify/"

var frameworkPackagePrefix = reflect.TypeOf((*T)(nil)).Elem().PkgPath() + "."

// testify formats failures as "\tLabel:<padding>\tcontent" lines, with continuation lines
// indented by tabs and spaces only.
var labeledLinePattern = regexp.MustCompile(`^\t([A-Z][A-Za-z ]*):\s*\t(.*)$`)

// reformatFailureMessage reduces testify's multi-line labeled output to one line: the
// caller-supplied message if there was one, otherwise the text of the Error field without
// any diff. Messages that are not in testify's format are only trimmed.
func reformatFailureMessage(message string) string {
	fields := make(map[string][]string)
	var current string
	for _, line := range strings.Split(message, "\n") {
		if m := labeledLinePattern.FindStringSubmatch(line); m != nil {
			current = m[1]
			fields[current] = append(fields[current], m[2])
			continue
		}
		if current == "" || !strings.HasPrefix(line, "\t") {
			continue
		}
		text := strings.TrimSpace(line)
		if current == "Error" && text == "Diff:" {
			current = "Diff"
		}
		fields[current] = append(fields[current], text)
	}
	if len(fields["Error"]) == 0 {
		return strings.TrimSpace(message)
	}
	if m := collapseWhitespace(fields["Messages"]); m != "" {
		return m
	}
	return collapseWhitespace(fields["Error"])
}

func collapseWhitespace(lines []string) string {
	return strings.Join(strings.Fields(strings.Join(lines, " ")), " ")
}

// callerLocation returns the innermost frame that belongs neither to this package nor to
// testify, which is the line of test code that made the failing assertion.
func callerLocation() (string, uint) {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if !strings.HasPrefix(frame.Function, frameworkPackagePrefix) &&
			!strings.HasPrefix(frame.Function, testifyPackagePrefix) {
			return frame.File, uint(frame.Line)
		}
		if !more {
			return "", 0
		}
	}
}
