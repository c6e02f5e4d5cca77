// Package mockapi is an in-memory implementation of the scooter API endpoints that the suite
// exercises. It follows the documented contract, so running the suite against it checks the
// harness itself, and tests can inspect which couriers and orders are left behind.
package mockapi

import (
	"net/http"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldlog"

	"github.com/scooter-qa/scooter-contract-tests/servicedef"
)

const bodyLimit = 1 << 20

type courierRecord struct {
	id        int
	login     string
	password  string
	firstName string
}

// ListedOrder is one element of the "orders" array in the list response.
type ListedOrder struct {
	ID           int      `json:"id"`
	Track        int      `json:"track"`
	FirstName    string   `json:"firstName"`
	LastName     string   `json:"lastName"`
	Address      string   `json:"address"`
	MetroStation string   `json:"metroStation"`
	Phone        string   `json:"phone"`
	RentTime     int      `json:"rentTime"`
	DeliveryDate string   `json:"deliveryDate"`
	Comment      string   `json:"comment"`
	Color        []string `json:"color"`
	Status       int      `json:"status"`
	CreatedAt    string   `json:"createdAt"`
}

type listOrdersResponse struct {
	Orders   []ListedOrder `json:"orders"`
	PageInfo pageInfo      `json:"pageInfo"`
}

type pageInfo struct {
	Page  int `json:"page"`
	Total int `json:"total"`
	Limit int `json:"limit"`
}

type okResponse struct {
	OK bool `json:"ok"`
}

type loginResponse struct {
	ID int `json:"id"`
}

type createOrderResponse struct {
	Track int `json:"track"`
}

// Server is an http.Handler serving the courier and order endpoints from memory.
type Server struct {
	router        chi.Router
	loggers       ldlog.Loggers
	metrics       *serverMetrics
	couriers      map[string]*courierRecord
	courierLogins map[int]string
	orders        map[int]ListedOrder
	lastCourierID int
	lastOrderID   int
	lastTrack     int
	now           func() time.Time
	lock          sync.Mutex
}

// New creates an empty Server. Requests are logged at debug level.
func New(loggers ldlog.Loggers) *Server {
	s := &Server{
		loggers:       loggers,
		metrics:       newServerMetrics(),
		couriers:      make(map[string]*courierRecord),
		courierLogins: make(map[int]string),
		orders:        make(map[int]ListedOrder),
		lastTrack:     100000,
		now:           time.Now,
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.observe)
	r.Post(servicedef.CourierPath, s.createCourier)
	r.Post(servicedef.CourierLoginPath, s.loginCourier)
	r.Delete(servicedef.CourierPath+"/{id}", s.deleteCourier)
	r.Post(servicedef.OrdersPath, s.createOrder)
	r.Get(servicedef.OrdersPath, s.listOrders)
	r.Put(servicedef.OrderCancelPath, s.cancelOrder)
	r.Method(http.MethodGet, MetricsPath, s.metrics.handler())
	s.router = r

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// CourierCount returns the number of couriers that exist.
func (s *Server) CourierCount() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return len(s.couriers)
}

// OrderCount returns the number of orders that have not been canceled.
func (s *Server) OrderCount() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return len(s.orders)
}

func (s *Server) createCourier(w http.ResponseWriter, r *http.Request) {
	var c servicedef.Courier
	if !decodeJSON(w, r, &c) {
		return
	}
	if !present(c.Login) || !present(c.Password) || !present(c.FirstName) {
		writeError(w, http.StatusBadRequest, servicedef.MessageNotEnoughDataToCreate)
		return
	}

	s.lock.Lock()
	defer s.lock.Unlock()
	login := c.Login.StringValue()
	if _, exists := s.couriers[login]; exists {
		writeError(w, http.StatusConflict, servicedef.MessageLoginAlreadyInUse)
		return
	}
	s.couriers[login] = &courierRecord{
		login:     login,
		password:  c.Password.StringValue(),
		firstName: c.FirstName.StringValue(),
	}
	writeJSON(w, http.StatusCreated, okResponse{OK: true})
}

func (s *Server) loginCourier(w http.ResponseWriter, r *http.Request) {
	var creds servicedef.Credentials
	if !decodeJSON(w, r, &creds) {
		return
	}
	if !present(creds.Login) || !present(creds.Password) {
		writeError(w, http.StatusBadRequest, servicedef.MessageNotEnoughDataToLogin)
		return
	}

	s.lock.Lock()
	defer s.lock.Unlock()
	c := s.couriers[creds.Login.StringValue()]
	if c == nil || c.password != creds.Password.StringValue() {
		writeError(w, http.StatusNotFound, servicedef.MessageAccountNotFound)
		return
	}
	if c.id == 0 {
		s.lastCourierID++
		c.id = s.lastCourierID
		s.courierLogins[c.id] = c.login
	}
	writeJSON(w, http.StatusOK, loginResponse{ID: c.id})
}

func (s *Server) deleteCourier(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, servicedef.MessageNotEnoughDataToDelete)
		return
	}

	s.lock.Lock()
	defer s.lock.Unlock()
	login, ok := s.courierLogins[id]
	if !ok {
		writeError(w, http.StatusNotFound, servicedef.MessageCourierIDNotFound)
		return
	}
	delete(s.courierLogins, id)
	delete(s.couriers, login)
	writeJSON(w, http.StatusOK, okResponse{OK: true})
}

func (s *Server) createOrder(w http.ResponseWriter, r *http.Request) {
	var o servicedef.Order
	if !decodeJSON(w, r, &o) {
		return
	}

	s.lock.Lock()
	defer s.lock.Unlock()
	s.lastOrderID++
	s.lastTrack++
	s.orders[s.lastTrack] = ListedOrder{
		ID:           s.lastOrderID,
		Track:        s.lastTrack,
		FirstName:    o.FirstName,
		LastName:     o.LastName,
		Address:      o.Address,
		MetroStation: o.MetroStation,
		Phone:        o.Phone,
		RentTime:     o.RentTime,
		DeliveryDate: o.DeliveryDate,
		Comment:      o.Comment,
		Color:        o.Color,
		CreatedAt:    s.now().UTC().Format(time.RFC3339),
	}
	writeJSON(w, http.StatusCreated, createOrderResponse{Track: s.lastTrack})
}

func (s *Server) listOrders(w http.ResponseWriter, r *http.Request) {
	s.lock.Lock()
	orders := make([]ListedOrder, 0, len(s.orders))
	for _, o := range s.orders {
		orders = append(orders, o)
	}
	s.lock.Unlock()

	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })
	writeJSON(w, http.StatusOK, listOrdersResponse{
		Orders:   orders,
		PageInfo: pageInfo{Page: 0, Total: len(orders), Limit: len(orders)},
	})
}

func (s *Server) cancelOrder(w http.ResponseWriter, r *http.Request) {
	var params servicedef.CancelOrderParams
	if !decodeJSON(w, r, &params) {
		return
	}
	if params.Track == 0 {
		writeError(w, http.StatusBadRequest, servicedef.MessageNotEnoughDataToSearch)
		return
	}

	s.lock.Lock()
	defer s.lock.Unlock()
	if _, ok := s.orders[params.Track]; !ok {
		writeError(w, http.StatusNotFound, servicedef.MessageOrderNotFound)
		return
	}
	delete(s.orders, params.Track)
	writeJSON(w, http.StatusOK, okResponse{OK: true})
}
