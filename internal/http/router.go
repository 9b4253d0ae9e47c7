package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"pennywise/internal/http/dashboard"
	"pennywise/internal/http/export"
	"pennywise/internal/http/importcsv"
	"pennywise/internal/http/limits"
	"pennywise/internal/http/transaction"
)

func New(
	transactionsV1 *transaction.Handler,
	dashboardV1 *dashboard.Handler,
	limitsV1 *limits.Handler,
	importV1 *importcsv.Handler,
	exportV1 *export.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/transactions", func(r chi.Router) {
			transactionsV1.Routes(r)
		})

		r.Route("/dashboard", dashboardV1.Routes)

		r.Route("/limits", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			limitsV1.Routes(r)
		})

		r.Route("/import", importV1.Routes)

		r.Route("/export", exportV1.Routes)
	})

	return router
}
