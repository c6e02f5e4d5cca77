package scootertests

import (
	"net/http"

	"github.com/scooter-qa/scooter-contract-tests/servicedef"
)

// Contract holds the responses that the tests expect in cases where the API has not been
// consistent over time.
type Contract struct {
	// InvalidCredentialsStatus is the status of a login with an unknown login or a wrong password.
	// Zero means it is not known, and tests that depend on it are skipped.
	InvalidCredentialsStatus int
	// InvalidCredentialsMessage is the message of the same response.
	InvalidCredentialsMessage string
	DuplicateLoginMessage     string
}

func DefaultContract() Contract {
	return Contract{
		InvalidCredentialsStatus:  http.StatusNotFound,
		InvalidCredentialsMessage: servicedef.MessageAccountNotFound,
		DuplicateLoginMessage:     servicedef.MessageLoginAlreadyInUse,
	}
}
