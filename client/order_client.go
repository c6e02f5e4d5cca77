package client

import (
	"fmt"
	"net/http"

	"github.com/scooter-qa/scooter-contract-tests/framework"
	"github.com/scooter-qa/scooter-contract-tests/servicedef"
)

// OrderClient sends the order requests of the scooter API.
type OrderClient struct {
	spec   RequestSpec
	logger framework.Logger
}

// NewOrderClient creates an OrderClient. Each request and response is written to logger.
func NewOrderClient(spec RequestSpec, logger framework.Logger) *OrderClient {
	if logger == nil {
		logger = framework.NullLogger()
	}
	return &OrderClient{spec: spec, logger: logger}
}

// Create asks the API to create an order. A successful response carries the tracking number.
func (c *OrderClient) Create(order servicedef.Order) (*Response, error) {
	resp, err := c.spec.send(c.logger, http.MethodPost, servicedef.OrdersPath, order)
	if err != nil {
		return nil, fmt.Errorf("order create: %w", err)
	}
	return resp, nil
}

// List asks the API for the list of orders.
func (c *OrderClient) List() (*Response, error) {
	resp, err := c.spec.send(c.logger, http.MethodGet, servicedef.OrdersPath, nil)
	if err != nil {
		return nil, fmt.Errorf("order list: %w", err)
	}
	return resp, nil
}

// Cancel asks the API to cancel the order with the given tracking number. The response is
// discarded.
func (c *OrderClient) Cancel(track int) error {
	params := servicedef.CancelOrderParams{Track: track}
	if _, err := c.spec.send(c.logger, http.MethodPut, servicedef.OrderCancelPath, params); err != nil {
		return fmt.Errorf("order cancel: %w", err)
	}
	return nil
}
