package servicedef

import (
	"strconv"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

const (
	CourierPath      = "/api/v1/courier"
	CourierLoginPath = "/api/v1/courier/login"
)

// Courier is the request body for creating a courier. An undefined field is sent as JSON null,
// which is how tests express "field omitted".
type Courier struct {
	Login     ldvalue.OptionalString `json:"login"`
	Password  ldvalue.OptionalString `json:"password"`
	FirstName ldvalue.OptionalString `json:"firstName"`
}

// Credentials is the request body for logging in as a courier.
type Credentials struct {
	Login    ldvalue.OptionalString `json:"login"`
	Password ldvalue.OptionalString `json:"password"`
}

// Credentials returns the login projection of the courier.
func (c Courier) Credentials() Credentials {
	return Credentials{Login: c.Login, Password: c.Password}
}

// NewCourier builds a courier with every field defined.
func NewCourier(login, password, firstName string) Courier {
	return Courier{
		Login:     ldvalue.NewOptionalString(login),
		Password:  ldvalue.NewOptionalString(password),
		FirstName: ldvalue.NewOptionalString(firstName),
	}
}

// NewCredentials builds credentials with both fields defined.
func NewCredentials(login, password string) Credentials {
	return Credentials{
		Login:    ldvalue.NewOptionalString(login),
		Password: ldvalue.NewOptionalString(password),
	}
}

// CourierDeletePath returns the path of the courier with the given numeric id.
func CourierDeletePath(id int) string {
	return CourierPath + "/" + strconv.Itoa(id)
}
