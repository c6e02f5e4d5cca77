package scootertests

import (
	"net/http"

	"github.com/scooter-qa/scooter-contract-tests/client"
	"github.com/scooter-qa/scooter-contract-tests/servicedef"
)

// CourierFixture is a courier that a test intends to create. When the test finishes, the fixture
// logs in with the credentials it was created with and deletes the courier if the login works.
type CourierFixture struct {
	t           *T
	Courier     servicedef.Courier
	Credentials servicedef.Credentials
}

// NewCourier generates a random courier without creating it.
func (t *T) NewCourier() *CourierFixture {
	return t.NewCourierFrom(t.env.gen.GenerateCourier())
}

// NewCourierFrom wraps a courier built by the test, for instance one with a missing field.
func (t *T) NewCourierFrom(courier servicedef.Courier) *CourierFixture {
	f := &CourierFixture{t: t, Courier: courier, Credentials: courier.Credentials()}
	t.context.Defer(f.release)
	return f
}

// NewCreatedCourier generates a random courier and creates it, failing the test if the API does
// not answer 201.
func (t *T) NewCreatedCourier() *CourierFixture {
	f := t.NewCourier()
	RequireStatus(t, http.StatusCreated, f.Create())
	return f
}

// Create sends the courier to the API.
func (f *CourierFixture) Create() *client.Response {
	return f.t.CreateCourier(f.Courier)
}

// Login logs in with the captured credentials.
func (f *CourierFixture) Login() *client.Response {
	return f.t.Login(f.Credentials)
}

// ID logs in and returns the courier's id, failing the test if that is not possible.
func (f *CourierFixture) ID() int {
	resp := f.Login()
	RequireStatus(f.t, http.StatusOK, resp)
	return ExtractID(f.t, resp)
}

// release must not fail the test: the API may have rejected the courier, or the test may have
// deleted it already.
func (f *CourierFixture) release() {
	resp, err := f.t.couriers.Login(f.Credentials)
	if err != nil {
		f.t.Debug("courier cleanup: %s", err)
		return
	}
	if resp.StatusCode != http.StatusOK {
		f.t.Debug("courier cleanup: login returned %d, nothing to delete", resp.StatusCode)
		return
	}
	id, ok := resp.IntField(servicedef.FieldID)
	if !ok {
		f.t.Debug("courier cleanup: login response has no id")
		return
	}
	if err := f.t.couriers.Delete(id); err != nil {
		f.t.Debug("courier cleanup: %s", err)
	}
}

// OrderFixture is an order that a test intends to create. When the test finishes, the fixture
// cancels the order if its creation response carried a tracking number.
type OrderFixture struct {
	t       *T
	Order   servicedef.Order
	created *client.Response
}

// NewOrder generates a random order with the given colors without creating it.
func (t *T) NewOrder(colors ...string) *OrderFixture {
	order := t.env.gen.GenerateOrder()
	order.Color = colors
	f := &OrderFixture{t: t, Order: order}
	t.context.Defer(f.release)
	return f
}

// Create sends the order to the API.
func (f *OrderFixture) Create() *client.Response {
	resp := f.t.CreateOrder(f.Order)
	f.created = resp
	return resp
}

func (f *OrderFixture) release() {
	if f.created == nil {
		return
	}
	track, ok := f.created.IntField(servicedef.FieldTrack)
	if !ok {
		return
	}
	if err := f.t.orders.Cancel(track); err != nil {
		f.t.Debug("order cleanup: %s", err)
	}
}
