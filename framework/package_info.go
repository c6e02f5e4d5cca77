// Package framework contains the low-level test runner used by the scooter API contract tests.
//
// The general model is:
//
// 1. A test suite is a tree of named tests. The root action passed to Run calls Context.Run for
// each group of tests, and groups call Context.Run for individual tests, in sequence.
//
// 2. Context is similar to Go's testing.T: it accumulates failures, can stop the test
// immediately (FailNow), and implements require.TestingT so that testify assertions work.
//
// 3. Each test has its own captured debug output and its own list of cleanup functions. Cleanup
// functions registered with Defer run after the test action returns, fails or panics, which is
// what the fixtures in the suite rely on to release remote resources.
//
// The domain-specific code that knows what is being tested provides a test API on top of the
// Context and the test cases themselves.
package framework
