package router

import (
	"github.com/go-chi/chi/v5"

	"tourism/internal/handlers/agency"
	"tourism/internal/handlers/auth"
	"tourism/internal/handlers/comment"
	"tourism/internal/handlers/hotel"
	"tourism/internal/handlers/place"
	"tourism/internal/handlers/reservation"
	"tourism/internal/handlers/tour"
	"tourism/internal/handlers/user"
)

type DomainHandlers struct {
	Auth        auth.Handler
	User        user.Handler
	Comment     comment.Handler
	Reservation reservation.Handler
	Hotel       hotel.Handler
	Tour        tour.Handler
	Agency      agency.Handler
	Place       place.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

// SetupRoutes mounts every domain under /v1. Token and comment routes live beside the
// /users subrouter and take precedence over it.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Comment.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Reservation.Router(routerGroup)
		r.DomainHandlers.Hotel.Router(routerGroup)
		r.DomainHandlers.Tour.Router(routerGroup)
		r.DomainHandlers.Agency.Router(routerGroup)
		r.DomainHandlers.Place.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
