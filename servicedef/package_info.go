// Package servicedef contains the request and response shapes of the scooter API that are
// shared by the clients, the test suite and the mock API.
package servicedef
