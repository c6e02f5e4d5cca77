package datagen

import (
	"math/rand"
	"regexp"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	alphabetic = regexp.MustCompile(`^[A-Za-z]+$`)
	numeric    = regexp.MustCompile(`^[0-9]+$`)
)

func fixedClock() time.Time {
	return time.Date(2026, 12, 31, 23, 30, 0, 0, time.UTC)
}

func TestGenerateCourierFieldFormats(t *testing.T) {
	g := New(rand.NewSource(1), fixedClock)
	for i := 0; i < 100; i++ {
		c := g.GenerateCourier()
		require.True(t, c.Login.IsDefined())
		require.True(t, c.Password.IsDefined())
		require.True(t, c.FirstName.IsDefined())

		assert.Len(t, c.Login.StringValue(), 12)
		assert.Len(t, c.Password.StringValue(), 9)
		assert.Len(t, c.FirstName.StringValue(), 10)
		assert.Regexp(t, alphabetic, c.Login.StringValue())
		assert.Regexp(t, alphabetic, c.Password.StringValue())
		assert.Regexp(t, alphabetic, c.FirstName.StringValue())
	}
}

func TestGeneratedLoginsDoNotCollide(t *testing.T) {
	g := Default()
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		login := g.GenerateCourier().Login.StringValue()
		require.False(t, seen[login], "duplicate login %q", login)
		seen[login] = true
	}
}

func TestGenerateOrderFieldFormats(t *testing.T) {
	g := New(rand.NewSource(2), fixedClock)
	rentTimes := make(map[int]bool)
	for i := 0; i < 500; i++ {
		o := g.GenerateOrder()
		assert.Len(t, o.FirstName, 8)
		assert.Len(t, o.LastName, 10)
		assert.Len(t, o.Address, 15)
		assert.Regexp(t, alphabetic, o.FirstName)
		assert.Regexp(t, alphabetic, o.LastName)
		assert.Regexp(t, alphabetic, o.Address)

		assert.Len(t, o.MetroStation, 1)
		assert.Regexp(t, numeric, o.MetroStation)

		require.Len(t, o.Phone, 12)
		assert.Equal(t, "+7", o.Phone[:2])
		assert.Regexp(t, numeric, o.Phone[2:])

		assert.GreaterOrEqual(t, o.RentTime, 1)
		assert.LessOrEqual(t, o.RentTime, 10)
		rentTimes[o.RentTime] = true

		assert.Equal(t, "2027-01-01", o.DeliveryDate)
		assert.Nil(t, o.Color)
		assert.Regexp(t, `^comment [A-Za-z]{5}$`, o.Comment)
	}
	assert.Len(t, rentTimes, 10, "every rent time from 1 to 10 should occur")
}

func TestSameSourceProducesSameEntities(t *testing.T) {
	g1 := New(rand.NewSource(42), fixedClock)
	g2 := New(rand.NewSource(42), fixedClock)

	if diff := cmp.Diff(g1.GenerateOrder(), g2.GenerateOrder()); diff != "" {
		t.Fatalf("orders differ (-g1 +g2):\n%s", diff)
	}
	c1, c2 := g1.GenerateCourier(), g2.GenerateCourier()
	assert.Equal(t, c1.Login.StringValue(), c2.Login.StringValue())
	assert.Equal(t, c1.Password.StringValue(), c2.Password.StringValue())
}

func TestDefaultClockIsUsedWhenNil(t *testing.T) {
	g := New(rand.NewSource(3), nil)
	before := time.Now().AddDate(0, 0, 1).Format(DeliveryDateForm)
	date := g.GenerateOrder().DeliveryDate
	after := time.Now().AddDate(0, 0, 1).Format(DeliveryDateForm)
	assert.Contains(t, []string{before, after}, date)
}
