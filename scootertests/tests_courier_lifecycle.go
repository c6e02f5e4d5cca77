package scootertests

import (
	"net/http"

	"github.com/scooter-qa/scooter-contract-tests/servicedef"
)

func DoCourierLifecycleTests(t *T) {
	t.Run("deleted courier can no longer log in", func(t *T) {
		courier := t.NewCreatedCourier()
		id := courier.ID()

		resp := t.DeleteCourier(id)
		AssertStatus(t, http.StatusOK, resp)
		AssertOK(t, resp)

		requireInvalidCredentials(t, courier.Login())
	})

	t.Run("cannot delete a courier twice", func(t *T) {
		courier := t.NewCreatedCourier()
		id := courier.ID()
		RequireStatus(t, http.StatusOK, t.DeleteCourier(id))

		AssertError(t, http.StatusNotFound, servicedef.MessageCourierIDNotFound, t.DeleteCourier(id))
	})
}
