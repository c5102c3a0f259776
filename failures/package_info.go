// Package failures contains the data model for failures observed while running test cases:
// an immutable Record per failure and a per-case Sink that accumulates them.
package failures
