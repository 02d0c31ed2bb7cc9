package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/remib/phonestore/internal/api/handlers"
	"github.com/remib/phonestore/internal/api/middleware"
	"github.com/remib/phonestore/internal/service"
)

func NewRouter(services *service.Services) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth)
	productHandler := handlers.NewProductHandler(services.Catalog)
	orderHandler := handlers.NewOrderHandler(services.Order)
	accountHandler := handlers.NewAccountHandler(services.Account)

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Get("/products", productHandler.List)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(services.Token))

			r.Post("/orders", orderHandler.Place)
			r.Get("/orders", orderHandler.List)
			r.Delete("/user/delete", accountHandler.Delete)
		})
	})

	return r
}
