package scootertests

import (
	"net/http"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/scooter-qa/scooter-contract-tests/servicedef"
)

func DoCourierCreationTests(t *T) {
	t.Run("can create courier", func(t *T) {
		courier := t.NewCourier()

		resp := courier.Create()
		AssertStatus(t, http.StatusCreated, resp)
		AssertOK(t, resp)

		AssertStatus(t, http.StatusOK, courier.Login())
	})

	t.Run("cannot create the same courier twice", func(t *T) {
		courier := t.NewCreatedCourier()

		AssertError(t, http.StatusConflict, t.Contract().DuplicateLoginMessage, courier.Create())
	})

	t.Run("cannot reuse a login", func(t *T) {
		first := t.NewCreatedCourier()
		other := t.Generator().GenerateCourier()
		other.Login = first.Courier.Login
		second := t.NewCourierFrom(other)

		AssertError(t, http.StatusConflict, t.Contract().DuplicateLoginMessage, second.Create())
	})

	t.Run("missing field", func(t *T) {
		t.Run("login", func(t *T) {
			c := t.Generator().GenerateCourier()
			c.Login = ldvalue.OptionalString{}
			requireCreationRejected(t, t.NewCourierFrom(c))
		})

		t.Run("password", func(t *T) {
			c := t.Generator().GenerateCourier()
			c.Password = ldvalue.OptionalString{}
			requireCreationRejected(t, t.NewCourierFrom(c))
		})

		t.Run("firstName", func(t *T) {
			t.Issue("the API creates a courier without a first name")
			c := t.Generator().GenerateCourier()
			c.FirstName = ldvalue.OptionalString{}
			requireCreationRejected(t, t.NewCourierFrom(c))
		})
	})
}

func requireCreationRejected(t *T, courier *CourierFixture) {
	AssertError(t, http.StatusBadRequest, servicedef.MessageNotEnoughDataToCreate, courier.Create())
}
