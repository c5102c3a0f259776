package framework

import "sync"

// DefaultSuiteName is the name of the root suite returned by DefaultSuite.
const DefaultSuiteName = "All tests"

// Test is either a *Suite or a *Case.
type Test interface {
	Name() string
	isTest()
}

// Suite is a named, ordered group of tests. Suites may contain other suites.
type Suite struct {
	name  string
	tests []Test
}

// Case is a single test body.
type Case struct {
	name   string
	action func(*T)
}

func NewSuite(name string, tests ...Test) *Suite {
	return &Suite{name: name, tests: append([]Test(nil), tests...)}
}

func NewCase(name string, action func(*T)) *Case {
	return &Case{name: name, action: action}
}

func (s *Suite) Name() string { return s.name }

// Tests returns the suite's direct children in the order they were added.
func (s *Suite) Tests() []Test {
	return append([]Test(nil), s.tests...)
}

func (s *Suite) Add(tests ...Test) {
	s.tests = append(s.tests, tests...)
}

func (s *Suite) isTest() {}

func (c *Case) Name() string { return c.name }

func (c *Case) isTest() {}

var (
	registry     = NewSuite(DefaultSuiteName)
	registryLock sync.Mutex
)

// Register adds suites to the default suite. It is normally called from init functions
// of packages that define tests.
func Register(suites ...*Suite) {
	registryLock.Lock()
	defer registryLock.Unlock()
	for _, s := range suites {
		if s != nil {
			registry.tests = append(registry.tests, s)
		}
	}
}

// DefaultSuite returns a root suite containing every registered suite, in registration order.
func DefaultSuite() *Suite {
	registryLock.Lock()
	defer registryLock.Unlock()
	return NewSuite(registry.name, registry.tests...)
}
