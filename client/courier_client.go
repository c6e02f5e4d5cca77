package client

import (
	"fmt"
	"net/http"

	"github.com/scooter-qa/scooter-contract-tests/framework"
	"github.com/scooter-qa/scooter-contract-tests/servicedef"
)

// CourierClient sends the courier requests of the scooter API.
type CourierClient struct {
	spec   RequestSpec
	logger framework.Logger
}

// NewCourierClient creates a CourierClient. Each request and response is written to logger.
func NewCourierClient(spec RequestSpec, logger framework.Logger) *CourierClient {
	if logger == nil {
		logger = framework.NullLogger()
	}
	return &CourierClient{spec: spec, logger: logger}
}

// Create asks the API to register a courier.
func (c *CourierClient) Create(courier servicedef.Courier) (*Response, error) {
	resp, err := c.spec.send(c.logger, http.MethodPost, servicedef.CourierPath, courier)
	if err != nil {
		return nil, fmt.Errorf("courier create: %w", err)
	}
	return resp, nil
}

// Login asks the API for the id of the courier with these credentials.
func (c *CourierClient) Login(creds servicedef.Credentials) (*Response, error) {
	resp, err := c.spec.send(c.logger, http.MethodPost, servicedef.CourierLoginPath, creds)
	if err != nil {
		return nil, fmt.Errorf("courier login: %w", err)
	}
	return resp, nil
}

// Delete asks the API to remove the courier with the given id. The response is discarded.
func (c *CourierClient) Delete(id int) error {
	if _, err := c.spec.send(c.logger, http.MethodDelete, servicedef.CourierDeletePath(id), nil); err != nil {
		return fmt.Errorf("courier delete: %w", err)
	}
	return nil
}

// DeleteWithResponse is like Delete but returns the response for tests that check it.
func (c *CourierClient) DeleteWithResponse(id int) (*Response, error) {
	resp, err := c.spec.send(c.logger, http.MethodDelete, servicedef.CourierDeletePath(id), nil)
	if err != nil {
		return nil, fmt.Errorf("courier delete: %w", err)
	}
	return resp, nil
}
