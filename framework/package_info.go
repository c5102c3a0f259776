// Package framework is the test execution engine: it holds the suites and cases to run,
// executes them, and produces a tree of results.
//
// The general model is:
//
// 1. Suites group cases and other suites. Packages that define tests add their suites to
// the default suite with Register.
//
// 2. PerformTest runs a suite synchronously. Each case gets a *T, which is similar to Go's
// *testing.T and can be passed to the assert and require packages.
//
// 3. Every failure a case reports, whether an assertion failure through T.Errorf or a panic,
// is passed to the process-wide FailureHooks. The engine keeps its own failed flag per
// case, but it does not store the failures themselves; that is up to the hooks.
package framework
