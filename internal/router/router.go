package router

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/finwise-dev/finwise-backend/internal/handlers"
	"github.com/finwise-dev/finwise-backend/internal/middleware"
)

func NewRouter(deps *handlers.Deps) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(middleware.NewLoggerMiddleware(deps.Log).LoggerMiddleware)

	auth := middleware.NewMiddleware(deps.Firebase)

	txh := handlers.NewTransactionHandlers(deps)
	sh := handlers.NewSummaryHandlers(deps)
	ih := handlers.NewInvestmentHandlers(deps)
	ph := handlers.NewProfileHandlers(deps)

	r.Route("/api", func(r chi.Router) {
		r.Use(auth.FirebaseAuth)
		r.Mount("/transactions", txh.TransactionRoutes())
		r.Mount("/summary", sh.SummaryRoutes())
		r.Mount("/investments", ih.InvestmentRoutes())
		r.Mount("/profile", ph.ProfileRoutes())
	})

	return r
}
