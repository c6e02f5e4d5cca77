package servicedef

// Names of the response fields that tests read.
const (
	FieldID      = "id"
	FieldTrack   = "track"
	FieldOK      = "ok"
	FieldMessage = "message"
	FieldOrders  = "orders"
)

// Error messages returned by the scooter API. These are part of its public contract and are
// compared verbatim.
const (
	MessageNotEnoughDataToCreate = "Недостаточно данных для создания учетной записи"
	MessageLoginAlreadyInUse     = "Этот логин уже используется. Попробуйте другой."
	MessageNotEnoughDataToLogin  = "Недостаточно данных для входа"
	MessageAccountNotFound       = "Учетная запись не найдена"
	MessageNotEnoughDataToDelete = "Недостаточно данных для удаления курьера"
	MessageCourierIDNotFound     = "Курьера с таким id нет."
	MessageNotEnoughDataToSearch = "Недостаточно данных для поиска"
	MessageOrderNotFound         = "Заказ не найден"
)

// ErrorResponse is the body the API sends with a non-2xx status.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
