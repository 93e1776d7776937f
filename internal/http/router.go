package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/fundraise/internal/http/donation"
	"github.com/MrJamesThe3rd/fundraise/internal/http/fund"
	"github.com/MrJamesThe3rd/fundraise/internal/http/identity"
)

func New(
	fundsV1 *fund.Handler,
	donationsV1 *donation.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE"},
		AllowedHeaders: []string{"Accept", "Content-Type", identity.Header},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/funds", func(r chi.Router) {
			fundsV1.Routes(r)
		})

		r.Route("/donations", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			donationsV1.Routes(r)
		})
	})

	return router
}
