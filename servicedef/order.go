package servicedef

const (
	OrdersPath      = "/api/v1/orders"
	OrderCancelPath = "/api/v1/orders/cancel"
)

// Color tags accepted by the order endpoint.
const (
	ColorBlack = "BLACK"
	ColorGrey  = "GREY"
)

// Order is the request body for creating an order.
type Order struct {
	FirstName    string   `json:"firstName"`
	LastName     string   `json:"lastName"`
	Address      string   `json:"address"`
	MetroStation string   `json:"metroStation"`
	Phone        string   `json:"phone"`
	RentTime     int      `json:"rentTime"`
	DeliveryDate string   `json:"deliveryDate"`
	Comment      string   `json:"comment"`
	Color        []string `json:"color,omitempty"`
}

type CancelOrderParams struct {
	Track int `json:"track"`
}
