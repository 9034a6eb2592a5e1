package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	registerPath = "/auth/register"
	loginPath    = "/auth/login"
)

// publicPaths are served without a token. Everything else passes the auth
// gate first.
var publicPaths = map[string]struct{}{
	registerPath: {},
	loginPath:    {},
}

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	// the gate runs before the body is touched
	router.Use(h.auth)
	router.Use(withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post(registerPath, h.register)
		r.Post(loginPath, h.login)
	})

	// routes behind the auth gate
	router.Group(func(r chi.Router) {
		r.Get("/auth/hello", h.hello)

		r.Get("/main", h.home)
		r.Get("/main/getAllCars", h.getAllCars)
		r.Get("/main/getCarById/{id}", h.getCarByID)
		r.Post("/main/addCars", h.addCars)
		r.Post("/main/updatePersonById/{id}", h.updateCarByID)
		r.Delete("/main/deletePersonById/{id}", h.deleteCarByID)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
