package client

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/scooter-qa/scooter-contract-tests/framework"
	"github.com/scooter-qa/scooter-contract-tests/servicedef"
)

var jsonHeaders = http.Header{"Content-Type": {"application/json"}}

func specFor(t *testing.T, server *httptest.Server) RequestSpec {
	u, err := url.Parse(server.URL)
	require.NoError(t, err)
	return NewRequestSpec(u, server.Client())
}

func requireRequest(t *testing.T, ch <-chan httphelpers.HTTPRequestInfo) httphelpers.HTTPRequestInfo {
	select {
	case r := <-ch:
		return r
	case <-time.After(time.Second):
		require.Fail(t, "timed out waiting for request")
		return httphelpers.HTTPRequestInfo{}
	}
}

func TestRequestSpecURL(t *testing.T) {
	for _, base := range []string{"https://example.com", "https://example.com/"} {
		u, _ := url.Parse(base)
		spec := NewRequestSpec(u, nil)
		assert.Equal(t, "https://example.com/api/v1/orders", spec.URL("/api/v1/orders"))
		assert.Equal(t, "https://example.com/api/v1/orders", spec.URL("api/v1/orders"))
	}

	u, _ := url.Parse("https://example.com/scooter/")
	spec := NewRequestSpec(u, nil)
	assert.Equal(t, "https://example.com/scooter/api/v1/courier/login", spec.URL(servicedef.CourierLoginPath))
}

func TestRequestSpecIsNotAffectedByLaterChangesToURL(t *testing.T) {
	u, _ := url.Parse("https://example.com")
	spec := NewRequestSpec(u, nil)
	u.Host = "other.example.com"
	assert.Equal(t, "https://example.com", spec.BaseURL())
}

func TestNewRequestAppliesBaseConfiguration(t *testing.T) {
	u, _ := url.Parse("https://example.com")
	req, err := NewRequestSpec(u, nil).NewRequest(http.MethodGet, servicedef.OrdersPath, nil)
	require.NoError(t, err)
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
	assert.Equal(t, "application/json", req.Header.Get("Accept"))
	assert.Nil(t, req.Body)
}

func TestCourierCreate(t *testing.T) {
	handler, requestsCh := httphelpers.RecordingHandler(
		httphelpers.HandlerWithResponse(201, jsonHeaders, []byte(`{"ok":true}`)))
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		c := NewCourierClient(specFor(t, server), nil)

		resp, err := c.Create(servicedef.NewCourier("login", "password", "name"))
		require.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)
		assert.True(t, resp.Field(servicedef.FieldOK).BoolValue())

		r := requireRequest(t, requestsCh)
		assert.Equal(t, http.MethodPost, r.Request.Method)
		assert.Equal(t, "/api/v1/courier", r.Request.URL.Path)
		assert.Equal(t, "application/json", r.Request.Header.Get("Content-Type"))
		assert.JSONEq(t, `{"login":"login","password":"password","firstName":"name"}`, string(r.Body))
	})
}

func TestCourierCreateSendsUndefinedFieldsAsNull(t *testing.T) {
	handler, requestsCh := httphelpers.RecordingHandler(
		httphelpers.HandlerWithResponse(400, jsonHeaders, []byte(`{"code":400}`)))
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		c := NewCourierClient(specFor(t, server), nil)

		courier := servicedef.NewCourier("login", "password", "name")
		courier.FirstName = ldvalue.OptionalString{}
		_, err := c.Create(courier)
		require.NoError(t, err)

		r := requireRequest(t, requestsCh)
		assert.JSONEq(t, `{"login":"login","password":"password","firstName":null}`, string(r.Body))
	})
}

func TestCourierLoginReturnsErrorStatusWithoutError(t *testing.T) {
	body := []byte(`{"code":404,"message":"` + servicedef.MessageAccountNotFound + `"}`)
	handler, requestsCh := httphelpers.RecordingHandler(
		httphelpers.HandlerWithResponse(404, jsonHeaders, body))
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		c := NewCourierClient(specFor(t, server), nil)

		resp, err := c.Login(servicedef.NewCredentials("nobody", "nothing"))
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
		assert.Equal(t, servicedef.MessageAccountNotFound, resp.Message())
		_, ok := resp.IntField(servicedef.FieldID)
		assert.False(t, ok)

		r := requireRequest(t, requestsCh)
		assert.Equal(t, http.MethodPost, r.Request.Method)
		assert.Equal(t, "/api/v1/courier/login", r.Request.URL.Path)
		assert.JSONEq(t, `{"login":"nobody","password":"nothing"}`, string(r.Body))
	})
}

func TestCourierLoginReturnsID(t *testing.T) {
	handler := httphelpers.HandlerWithResponse(200, jsonHeaders, []byte(`{"id":123}`))
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		resp, err := NewCourierClient(specFor(t, server), nil).Login(servicedef.NewCredentials("a", "b"))
		require.NoError(t, err)
		id, ok := resp.IntField(servicedef.FieldID)
		assert.True(t, ok)
		assert.Equal(t, 123, id)
	})
}

func TestCourierDelete(t *testing.T) {
	handler, requestsCh := httphelpers.RecordingHandler(
		httphelpers.HandlerWithResponse(200, jsonHeaders, []byte(`{"ok":true}`)))
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		require.NoError(t, NewCourierClient(specFor(t, server), nil).Delete(42))

		r := requireRequest(t, requestsCh)
		assert.Equal(t, http.MethodDelete, r.Request.Method)
		assert.Equal(t, "/api/v1/courier/42", r.Request.URL.Path)
		assert.Empty(t, r.Body)
	})
}

func TestCourierDeleteIgnoresErrorStatus(t *testing.T) {
	httphelpers.WithServer(httphelpers.HandlerWithStatus(404), func(server *httptest.Server) {
		assert.NoError(t, NewCourierClient(specFor(t, server), nil).Delete(42))
	})
}

func TestOrderCreate(t *testing.T) {
	handler, requestsCh := httphelpers.RecordingHandler(
		httphelpers.HandlerWithResponse(201, jsonHeaders, []byte(`{"track":555}`)))
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		order := servicedef.Order{
			FirstName:    "Ivan",
			LastName:     "Petrov",
			Address:      "Street",
			MetroStation: "4",
			Phone:        "+70000000000",
			RentTime:     3,
			DeliveryDate: "2026-10-20",
			Comment:      "comment",
			Color:        []string{servicedef.ColorBlack},
		}
		resp, err := NewOrderClient(specFor(t, server), nil).Create(order)
		require.NoError(t, err)
		track, ok := resp.IntField(servicedef.FieldTrack)
		assert.True(t, ok)
		assert.Equal(t, 555, track)

		r := requireRequest(t, requestsCh)
		assert.Equal(t, http.MethodPost, r.Request.Method)
		assert.Equal(t, "/api/v1/orders", r.Request.URL.Path)
		assert.JSONEq(t, `{"firstName":"Ivan","lastName":"Petrov","address":"Street","metroStation":"4",
			"phone":"+70000000000","rentTime":3,"deliveryDate":"2026-10-20","comment":"comment",
			"color":["BLACK"]}`, string(r.Body))
	})
}

func TestOrderCreateWithoutColorOmitsField(t *testing.T) {
	handler, requestsCh := httphelpers.RecordingHandler(
		httphelpers.HandlerWithResponse(201, jsonHeaders, []byte(`{"track":1}`)))
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		_, err := NewOrderClient(specFor(t, server), nil).Create(servicedef.Order{RentTime: 1})
		require.NoError(t, err)

		r := requireRequest(t, requestsCh)
		assert.NotContains(t, string(r.Body), "color")
	})
}

func TestOrderList(t *testing.T) {
	handler, requestsCh := httphelpers.RecordingHandler(
		httphelpers.HandlerWithResponse(200, jsonHeaders, []byte(`{"orders":[{"id":1},{"id":2}]}`)))
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		resp, err := NewOrderClient(specFor(t, server), nil).List()
		require.NoError(t, err)
		assert.Equal(t, 2, resp.Field(servicedef.FieldOrders).Count())

		r := requireRequest(t, requestsCh)
		assert.Equal(t, http.MethodGet, r.Request.Method)
		assert.Equal(t, "/api/v1/orders", r.Request.URL.Path)
	})
}

func TestOrderCancelSendsOnlyTrack(t *testing.T) {
	handler, requestsCh := httphelpers.RecordingHandler(
		httphelpers.HandlerWithResponse(200, jsonHeaders, []byte(`{"ok":true}`)))
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		require.NoError(t, NewOrderClient(specFor(t, server), nil).Cancel(7))

		r := requireRequest(t, requestsCh)
		assert.Equal(t, http.MethodPut, r.Request.Method)
		assert.Equal(t, "/api/v1/orders/cancel", r.Request.URL.Path)
		assert.JSONEq(t, `{"track":7}`, string(r.Body))
	})
}

func TestNonJSONBodyIsKeptRaw(t *testing.T) {
	handler := httphelpers.HandlerWithResponse(504, nil, []byte("<html>Gateway Timeout</html>"))
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		resp, err := NewOrderClient(specFor(t, server), nil).List()
		require.NoError(t, err)
		assert.Equal(t, 504, resp.StatusCode)
		assert.True(t, resp.Body.IsNull())
		assert.Equal(t, "<html>Gateway Timeout</html>", string(resp.Raw))
		assert.Equal(t, "", resp.Message())
	})
}

func TestTransportFailureIsReturnedAsError(t *testing.T) {
	server := httptest.NewServer(httphelpers.HandlerWithStatus(200))
	spec := specFor(t, server)
	server.Close()

	_, err := NewCourierClient(spec, nil).Login(servicedef.NewCredentials("a", "b"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "courier login")

	assert.Error(t, NewOrderClient(spec, nil).Cancel(1))
}

func TestSendLogsTheBodyThatWasSent(t *testing.T) {
	handler, requestsCh := httphelpers.RecordingHandler(httphelpers.HandlerWithStatus(200))
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		var logger framework.CapturingLogger
		_, err := specFor(t, server).send(&logger, http.MethodPost, servicedef.CourierPath,
			servicedef.NewCourier("login", "password", "name"))
		require.NoError(t, err)

		r := requireRequest(t, requestsCh)
		output := logger.Output()
		require.NotEmpty(t, output)
		assert.Equal(t, "Sending POST "+server.URL+servicedef.CourierPath+" "+string(r.Body), output[0].Message)
	})
}

func TestSendReturnsMarshalErrorWithoutSending(t *testing.T) {
	handler, requestsCh := httphelpers.RecordingHandler(httphelpers.HandlerWithStatus(200))
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		var logger framework.CapturingLogger
		_, err := specFor(t, server).send(&logger, http.MethodPost, servicedef.OrdersPath, make(chan int))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to marshal body")
		assert.Empty(t, logger.Output())
		assert.Len(t, requestsCh, 0)
	})
}
