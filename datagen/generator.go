// Package datagen produces randomized couriers and orders that satisfy the scooter API's field
// format rules.
package datagen

import (
	"math/rand"
	"sync"
	"time"

	"github.com/scooter-qa/scooter-contract-tests/servicedef"
)

const (
	letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits  = "0123456789"

	courierLoginLength     = 12
	courierPasswordLength  = 9
	courierFirstNameLength = 10

	orderFirstNameLength = 8
	orderLastNameLength  = 10
	orderAddressLength   = 15
	orderCommentLength   = 5
	orderPhoneDigits     = 10
	orderMaxRentTime     = 10

	PhonePrefix      = "+7"
	DeliveryDateForm = "2006-01-02"
)

// Generator creates test entities from a random source and a clock. It is safe for concurrent
// use.
type Generator struct {
	rand *rand.Rand
	now  func() time.Time
	lock sync.Mutex
}

// New creates a Generator. The same source and clock always produce the same sequence of
// entities. If now is nil, time.Now is used.
func New(src rand.Source, now func() time.Time) *Generator {
	if now == nil {
		now = time.Now
	}
	return &Generator{rand: rand.New(src), now: now}
}

// Default creates a Generator seeded from the current time.
func Default() *Generator {
	return New(rand.NewSource(time.Now().UnixNano()), nil)
}

// GenerateCourier returns a courier with random alphabetic login, password and first name.
func (g *Generator) GenerateCourier() servicedef.Courier {
	g.lock.Lock()
	defer g.lock.Unlock()
	return servicedef.NewCourier(
		g.randomString(letters, courierLoginLength),
		g.randomString(letters, courierPasswordLength),
		g.randomString(letters, courierFirstNameLength),
	)
}

// GenerateOrder returns an order for delivery tomorrow with random personal details. Color is
// left unset.
func (g *Generator) GenerateOrder() servicedef.Order {
	g.lock.Lock()
	defer g.lock.Unlock()
	return servicedef.Order{
		FirstName:    g.randomString(letters, orderFirstNameLength),
		LastName:     g.randomString(letters, orderLastNameLength),
		Address:      g.randomString(letters, orderAddressLength),
		MetroStation: g.randomString(digits, 1),
		Phone:        PhonePrefix + g.randomString(digits, orderPhoneDigits),
		RentTime:     g.rand.Intn(orderMaxRentTime) + 1,
		DeliveryDate: g.now().AddDate(0, 0, 1).Format(DeliveryDateForm),
		Comment:      "comment " + g.randomString(letters, orderCommentLength),
	}
}

func (g *Generator) randomString(alphabet string, length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = alphabet[g.rand.Intn(len(alphabet))]
	}
	return string(b)
}
