package scootertests

import (
	"github.com/stretchr/testify/require"

	"github.com/scooter-qa/scooter-contract-tests/client"
	"github.com/scooter-qa/scooter-contract-tests/datagen"
	"github.com/scooter-qa/scooter-contract-tests/framework"
	"github.com/scooter-qa/scooter-contract-tests/servicedef"
)

type environment struct {
	spec     client.RequestSpec
	gen      *datagen.Generator
	contract Contract
}

// T represents a test or subtest in the scooter API test suite.
//
// It implements the same basic functionality as Go's testing.T, on top of the framework
// package's Context. Every T has its own courier and order clients, which write each request
// and response to the debug output of that test, so a failed test shows exactly what was sent.
//
// To make test assertions, use the assert and require packages, passing the *T as if it were a
// *testing.T. The request methods of T fail the test immediately if the API could not be
// reached at all; they never interpret the HTTP status.
type T struct {
	context  *framework.Context
	env      *environment
	couriers *client.CourierClient
	orders   *client.OrderClient
}

func newTestScope(context *framework.Context, env *environment) *T {
	return &T{
		context:  context,
		env:      env,
		couriers: client.NewCourierClient(env.spec, context.DebugLogger()),
		orders:   client.NewOrderClient(env.spec, context.DebugLogger()),
	}
}

// Errorf is called by assertions to log a test failure. It does not cause an immediate exit.
func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

// FailNow is called by assertions when a test should fail and immediately exit. The methods in
// the require package call FailNow.
func (t *T) FailNow() {
	t.context.FailNow()
}

// Run runs a subtest. This is equivalent to the Run method of testing.T.
func (t *T) Run(name string, action func(*T)) {
	t.context.Run(name, func(c *framework.Context) {
		action(newTestScope(c, t.env))
	})
}

// Debug logs some debug output for the test. The output will be passed to the test logger at
// the end of the test.
func (t *T) Debug(format string, args ...interface{}) {
	t.context.Debug(format, args...)
}

// Skip stops the test and reports it as skipped.
func (t *T) Skip() {
	t.context.Skip()
}

// SkipWithReason stops the test and reports it as skipped, with an explanation.
func (t *T) SkipWithReason(reason string) {
	t.context.SkipWithReason(reason)
}

// Issue records a known defect of the API that this test exposes. It is reported with the
// result if the test fails.
func (t *T) Issue(description string) {
	t.context.Issue(description)
}

// Contract returns the expected responses configured for this run.
func (t *T) Contract() Contract {
	return t.env.contract
}

// Generator returns the source of random couriers and orders.
func (t *T) Generator() *datagen.Generator {
	return t.env.gen
}

// CreateCourier sends a courier creation request.
func (t *T) CreateCourier(courier servicedef.Courier) *client.Response {
	resp, err := t.couriers.Create(courier)
	require.NoError(t, err)
	return resp
}

// Login sends a courier login request.
func (t *T) Login(creds servicedef.Credentials) *client.Response {
	resp, err := t.couriers.Login(creds)
	require.NoError(t, err)
	return resp
}

// DeleteCourier sends a courier deletion request.
func (t *T) DeleteCourier(id int) *client.Response {
	resp, err := t.couriers.DeleteWithResponse(id)
	require.NoError(t, err)
	return resp
}

// CreateOrder sends an order creation request.
func (t *T) CreateOrder(order servicedef.Order) *client.Response {
	resp, err := t.orders.Create(order)
	require.NoError(t, err)
	return resp
}

// ListOrders requests the order list.
func (t *T) ListOrders() *client.Response {
	resp, err := t.orders.List()
	require.NoError(t, err)
	return resp
}
