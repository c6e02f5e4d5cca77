package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/scooter-qa/scooter-contract-tests/framework"
)

const contentTypeJSON = "application/json"

// RequestSpec is the base configuration shared by every request the clients send: the root
// endpoint of the scooter API, the JSON content type, and the HTTP client to send with.
//
// A RequestSpec is immutable once created, so one instance can be shared by any number of
// clients.
type RequestSpec struct {
	baseURL    url.URL
	httpClient *http.Client
}

// NewRequestSpec creates a RequestSpec for the API rooted at baseURL. If httpClient is nil,
// http.DefaultClient is used.
func NewRequestSpec(baseURL *url.URL, httpClient *http.Client) RequestSpec {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return RequestSpec{baseURL: *baseURL, httpClient: httpClient}
}

// BaseURL returns the root endpoint as a string.
func (s RequestSpec) BaseURL() string {
	return s.baseURL.String()
}

// URL resolves an API path such as "/api/v1/orders" against the root endpoint. Any path in the
// root endpoint itself is kept as a prefix.
func (s RequestSpec) URL(path string) string {
	u := s.baseURL
	u.Path = strings.TrimSuffix(u.Path, "/") + "/" + strings.TrimPrefix(path, "/")
	u.RawPath = ""
	return u.String()
}

// NewRequest builds a request with the method, path and optional JSON body applied on top of
// the base configuration.
func (s RequestSpec) NewRequest(method, path string, body interface{}) (*http.Request, error) {
	data, err := marshalBody(body)
	if err != nil {
		return nil, err
	}
	return s.newRequest(method, path, data)
}

func marshalBody(body interface{}) ([]byte, error) {
	if body == nil {
		return nil, nil
	}
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal body: %w", err)
	}
	return data, nil
}

func (s RequestSpec) newRequest(method, path string, data []byte) (*http.Request, error) {
	var bodyReader io.Reader
	if data != nil {
		bodyReader = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, s.URL(path), bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", contentTypeJSON)
	req.Header.Set("Accept", contentTypeJSON)
	return req, nil
}

// send performs exactly one HTTP call. The returned error is only for failures to get a
// response at all; any HTTP status is returned as a Response.
func (s RequestSpec) send(logger framework.Logger, method, path string, body interface{}) (*Response, error) {
	data, err := marshalBody(body)
	if err != nil {
		return nil, err
	}
	req, err := s.newRequest(method, path, data)
	if err != nil {
		return nil, err
	}
	if data != nil {
		logger.Printf("Sending %s %s %s", method, req.URL, string(data))
	} else {
		logger.Printf("Sending %s %s", method, req.URL)
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		logger.Printf("Request failed: %s", err)
		return nil, err
	}
	r, err := readResponse(resp)
	if err != nil {
		logger.Printf("Could not read response body: %s", err)
		return nil, err
	}
	logger.Printf("Received %d %s", r.StatusCode, string(r.Raw))
	return r, nil
}
