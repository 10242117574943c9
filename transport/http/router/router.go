package router

import (
	"ehotel/internal/handlers/booking"
	"ehotel/internal/handlers/chain"
	"ehotel/internal/handlers/customer"
	"ehotel/internal/handlers/employee"
	"ehotel/internal/handlers/hotel"
	"ehotel/internal/handlers/room"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Chain    chain.Handler
	Hotel    hotel.Handler
	Room     room.Handler
	Employee employee.Handler
	Customer customer.Handler
	Booking  booking.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Chain.Router(routerGroup)
		r.DomainHandlers.Hotel.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Employee.Router(routerGroup)
		r.DomainHandlers.Customer.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
