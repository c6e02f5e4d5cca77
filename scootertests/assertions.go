package scootertests

import (
	"fmt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scooter-qa/scooter-contract-tests/client"
	"github.com/scooter-qa/scooter-contract-tests/servicedef"
)

// ExtractID returns the courier id from a login response. The test fails immediately if the
// response has no integer id.
func ExtractID(t require.TestingT, resp *client.Response) int {
	return extractInt(t, resp, servicedef.FieldID)
}

// ExtractTrack returns the tracking number from an order creation response. The test fails
// immediately if the response has no integer track.
func ExtractTrack(t require.TestingT, resp *client.Response) int {
	return extractInt(t, resp, servicedef.FieldTrack)
}

func extractInt(t require.TestingT, resp *client.Response, name string) int {
	value, ok := resp.IntField(name)
	if !ok {
		require.Fail(t, fmt.Sprintf("response has no integer %q property", name), resp.String())
	}
	return value
}

func RequireStatus(t require.TestingT, expected int, resp *client.Response) {
	require.Equal(t, expected, resp.StatusCode, "unexpected status; %s", resp)
}

func AssertStatus(t assert.TestingT, expected int, resp *client.Response) bool {
	return assert.Equal(t, expected, resp.StatusCode, "unexpected status; %s", resp)
}

// AssertError checks both the status and the message of an error response.
func AssertError(t assert.TestingT, status int, message string, resp *client.Response) bool {
	statusOK := AssertStatus(t, status, resp)
	return assert.Equal(t, message, resp.Message(), "unexpected message; %s", resp) && statusOK
}

// AssertOK checks that a response body is {"ok":true}.
func AssertOK(t assert.TestingT, resp *client.Response) bool {
	return assert.True(t, resp.Field(servicedef.FieldOK).BoolValue(), "expected ok=true; %s", resp)
}
