package handlers

import (
	"Catalogue/internal/config"
	"Catalogue/internal/graph"
	"Catalogue/internal/middleware"
	"Catalogue/internal/service"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	itemService *service.ItemService,
	logger *zap.SugaredLogger,
	config *config.Config,
) (*Handler, error) {
	schema, err := graph.NewSchema(itemService, logger)
	if err != nil {
		return nil, fmt.Errorf("build graphql schema: %w", err)
	}

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.WithCORS(config.CORSOrigins))
	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)

	// Handlers
	itemHandler := NewItemHandler(itemService, logger)
	gqlHandler := graph.NewHandler(schema, logger)

	r.Get("/healthz", Health)

	// GraphQL
	r.Method(http.MethodPost, "/graphql", gqlHandler)
	r.Method(http.MethodGet, "/graphql", gqlHandler)

	// Items routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/items", itemHandler.List)
		r.Post("/items", itemHandler.Create)
		r.Get("/items/{id}", itemHandler.Get)
		r.Patch("/items/{id}", itemHandler.Update)
		r.Get("/categories", itemHandler.Categories)
	})

	return &Handler{Router: r}, nil
}

// Health отвечает 200, пока процесс жив.
func Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
