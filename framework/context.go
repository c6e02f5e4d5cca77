package framework

import (
	"errors"
	"fmt"
	"runtime/debug"
)

type environment struct {
	results    Results
	testLogger TestLogger
	filter     Filter
}

// Context is the state of one test or subtest. It plays the same role as *testing.T, and it
// satisfies require.TestingT so that testify assertions can be used with it.
type Context struct {
	env         *environment
	id          TestID
	debugLogger CapturingLogger
	failed      bool
	skipped     bool
	skipReason  string
	issue       string
	hasSubtests bool
	errors      []error
	cleanups    []func()
}

// Run executes a top-level test action and returns the accumulated results of it and all of
// its subtests.
func Run(
	filter Filter,
	testLogger TestLogger,
	action func(*Context),
) Results {
	if testLogger == nil {
		testLogger = nullTestLogger{}
	}
	env := &environment{
		filter:     filter,
		testLogger: testLogger,
	}
	c := &Context{env: env}
	c.run(action)
	return env.results
}

func (c *Context) run(action func(*Context)) {
	defer func() {
		c.handlePanic(recover())
		c.runCleanups()
		if c.id.IsRoot() {
			return
		}
		result := TestResult{
			TestID:  c.id,
			Errors:  c.errors,
			Failed:  c.failed && !c.skipped,
			Skipped: c.skipped,
			Group:   c.hasSubtests,
			Issue:   c.issue,
		}
		c.env.results.Tests = append(c.env.results.Tests, result)
		if result.Failed {
			c.env.results.Failures = append(c.env.results.Failures, result)
		}
	}()

	action(c)
}

// handlePanic converts the value recovered from a test action or cleanup function into a test
// outcome. FailNow and Skip panic with the Context itself; anything else is unexpected.
func (c *Context) handlePanic(r interface{}) {
	if r == nil {
		return
	}
	if _, ok := r.(*Context); ok {
		if c.skipped {
			return
		}
		c.failed = true
		if len(c.errors) == 0 {
			c.addError(errors.New("test failed with no failure message"))
		}
		return
	}
	c.failed = true
	c.addError(fmt.Errorf("unexpected panic in test: %+v\n%s", r, string(debug.Stack())))
}

// runCleanups calls the functions registered with Defer in reverse order. Each one runs even if
// an earlier one failed.
func (c *Context) runCleanups() {
	for len(c.cleanups) > 0 {
		last := len(c.cleanups) - 1
		fn := c.cleanups[last]
		c.cleanups = c.cleanups[:last]
		func() {
			defer func() {
				c.handlePanic(recover())
			}()
			fn()
		}()
	}
}

func (c *Context) addError(err error) {
	c.errors = append(c.errors, err)
	c.env.testLogger.TestError(c.id, err)
}

func (c *Context) ID() TestID {
	return c.id
}

// Run runs a subtest. It is skipped without being started if the filter excludes its ID.
func (c *Context) Run(name string, action func(*Context)) {
	id := c.id.Plus(name)
	c.hasSubtests = true

	if c.env.filter != nil && !c.env.filter(id) {
		return
	}
	c.env.testLogger.TestStarted(id)
	c1 := &Context{
		id:  id,
		env: c.env,
	}
	c1.run(action)
	if c1.skipped {
		c.env.testLogger.TestSkipped(id, c1.skipReason)
	} else {
		c.env.testLogger.TestFinished(id, c1.failed, c1.issue, c1.debugLogger.Output())
	}
}

func (c *Context) Errorf(format string, args ...interface{}) {
	c.failed = true
	c.addError(fmt.Errorf(format, args...))
}

func (c *Context) FailNow() {
	panic(c)
}

func (c *Context) Skip() {
	c.skipped = true
	panic(c)
}

func (c *Context) SkipWithReason(reason string) {
	c.skipReason = reason
	c.Skip()
}

// Defer registers a function to be called when the test finishes, whether it passed, failed or
// panicked. Functions run in last-registered-first order.
func (c *Context) Defer(fn func()) {
	c.cleanups = append(c.cleanups, fn)
}

// Issue attaches a note about a known defect in the service under test. It is reported along
// with the test result but does not change it.
func (c *Context) Issue(description string) {
	c.issue = description
}

func (c *Context) Failed() bool {
	return c.failed
}

func (c *Context) Debug(message string, args ...interface{}) {
	c.debugLogger.Printf(message, args...)
}

func (c *Context) DebugLogger() Logger {
	return &c.debugLogger
}
