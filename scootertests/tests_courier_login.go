package scootertests

import (
	"net/http"

	"github.com/stretchr/testify/assert"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/scooter-qa/scooter-contract-tests/client"
	"github.com/scooter-qa/scooter-contract-tests/servicedef"
)

func DoCourierLoginTests(t *T) {
	t.Run("returns id", func(t *T) {
		courier := t.NewCreatedCourier()

		resp := courier.Login()
		AssertStatus(t, http.StatusOK, resp)
		id := ExtractID(t, resp)
		assert.Greater(t, id, 0)

		assert.Equal(t, id, courier.ID(), "second login returned a different id")
	})

	t.Run("missing login", func(t *T) {
		courier := t.NewCreatedCourier()
		creds := courier.Credentials
		creds.Login = ldvalue.OptionalString{}

		AssertError(t, http.StatusBadRequest, servicedef.MessageNotEnoughDataToLogin, t.Login(creds))
	})

	t.Run("missing password", func(t *T) {
		courier := t.NewCreatedCourier()
		creds := courier.Credentials
		creds.Password = ldvalue.OptionalString{}

		AssertError(t, http.StatusBadRequest, servicedef.MessageNotEnoughDataToLogin, t.Login(creds))
	})

	t.Run("wrong login", func(t *T) {
		courier := t.NewCreatedCourier()
		creds := courier.Credentials
		creds.Login = ldvalue.NewOptionalString(courier.Credentials.Login.StringValue() + "x")

		requireInvalidCredentials(t, t.Login(creds))
	})

	t.Run("wrong password", func(t *T) {
		courier := t.NewCreatedCourier()
		creds := courier.Credentials
		creds.Password = ldvalue.NewOptionalString(courier.Credentials.Password.StringValue() + "x")

		requireInvalidCredentials(t, t.Login(creds))
	})

	t.Run("courier does not exist", func(t *T) {
		courier := t.NewCourier()

		requireInvalidCredentials(t, courier.Login())
	})
}

func requireInvalidCredentials(t *T, resp *client.Response) {
	contract := t.Contract()
	if contract.InvalidCredentialsStatus == 0 {
		t.SkipWithReason("no expected response is configured for invalid credentials")
	}
	AssertError(t, contract.InvalidCredentialsStatus, contract.InvalidCredentialsMessage, resp)
}
