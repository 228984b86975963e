package router

import (
	"pitch/internal/handlers/auth"
	"pitch/internal/handlers/booking"
	"pitch/internal/handlers/ground"
	"pitch/internal/handlers/newsletter"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Booking    booking.Handler
	Ground     ground.Handler
	Auth       auth.Handler
	Newsletter newsletter.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/api", func(routerGroup chi.Router) {
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Ground.Router(routerGroup)
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Newsletter.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
