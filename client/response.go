package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Response is what the API sent back for one request. The clients never interpret it; tests
// check StatusCode and read named fields from Body.
type Response struct {
	StatusCode int
	Header     http.Header

	// Body is the parsed JSON body, or a null value if the body was empty or not JSON.
	Body ldvalue.Value

	// Raw is the body exactly as received.
	Raw []byte
}

func readResponse(resp *http.Response) (*Response, error) {
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	r := &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Raw:        raw,
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &r.Body); err != nil {
			r.Body = ldvalue.Null()
		}
	}
	return r, nil
}

// Field returns the named top-level property of the body, or a null value if there is none.
func (r *Response) Field(name string) ldvalue.Value {
	return r.Body.GetByKey(name)
}

// IntField returns the named property if it is an integer.
func (r *Response) IntField(name string) (int, bool) {
	v := r.Field(name)
	if !v.IsInt() {
		return 0, false
	}
	return v.IntValue(), true
}

// Message returns the "message" property that the API includes in error responses.
func (r *Response) Message() string {
	return r.Field("message").StringValue()
}

func (r *Response) String() string {
	return fmt.Sprintf("HTTP %d: %s", r.StatusCode, string(r.Raw))
}
