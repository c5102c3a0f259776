package failures

import (
	"fmt"
	"strings"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Record describes one observed test failure. It is never modified after creation.
type Record struct {
	message    string
	sourceFile ldvalue.OptionalString
	sourceLine uint
	expected   bool
}

// NewExpected creates a Record for an assertion failure. An empty file means the source
// location is unknown.
func NewExpected(message, file string, line uint) Record {
	r := Record{message: message, sourceLine: line, expected: true}
	if file != "" {
		r.sourceFile = ldvalue.NewOptionalString(file)
	}
	return r
}

// NewUnexpected creates a Record for a runtime fault. Only the text before the first line
// break of rawDescription is kept, since faults usually carry a stack trace after it.
func NewUnexpected(rawDescription string) Record {
	return Record{message: firstLine(rawDescription)}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func (r Record) Message() string { return r.message }

// SourceFile is undefined for unexpected faults.
func (r Record) SourceFile() ldvalue.OptionalString { return r.sourceFile }

// SourceLine is 0 when unknown.
func (r Record) SourceLine() uint { return r.sourceLine }

// Expected is true for assertion failures and false for runtime faults.
func (r Record) Expected() bool { return r.expected }

// Location returns "file:line", or "" if the source file is unknown.
func (r Record) Location() string {
	file, ok := r.sourceFile.Get()
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s:%d", file, r.sourceLine)
}

// String returns the display form of the failure, which is its message.
func (r Record) String() string {
	return r.message
}
