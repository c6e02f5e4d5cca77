package scootertests

import (
	"net/http"

	"github.com/stretchr/testify/assert"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/scooter-qa/scooter-contract-tests/servicedef"
)

func DoOrderTests(t *T) {
	t.Run("create", func(t *T) {
		for _, p := range []struct {
			name   string
			colors []string
		}{
			{"black", []string{servicedef.ColorBlack}},
			{"grey", []string{servicedef.ColorGrey}},
			{"black and grey", []string{servicedef.ColorBlack, servicedef.ColorGrey}},
			{"no color", nil},
		} {
			colors := p.colors
			t.Run(p.name, func(t *T) {
				order := t.NewOrder(colors...)

				resp := order.Create()
				RequireStatus(t, http.StatusCreated, resp)
				assert.Greater(t, ExtractTrack(t, resp), 0)
			})
		}
	})

	t.Run("list is not empty", func(t *T) {
		RequireStatus(t, http.StatusCreated, t.NewOrder().Create())

		resp := t.ListOrders()
		AssertStatus(t, http.StatusOK, resp)
		orders := resp.Field(servicedef.FieldOrders)
		assert.Equal(t, ldvalue.ArrayType, orders.Type(), "orders is not an array; %s", resp)
		assert.NotZero(t, orders.Count())
	})
}
