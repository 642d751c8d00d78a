package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// BasePath is the prefix every route is mounted under.
const BasePath = "/todo"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	router.Route(BasePath, func(r chi.Router) {
		r.Get("/version", h.getServerVersion)

		r.Get("/users/{owner}", h.getOwnerTodos)
		r.Post("/users/{owner}", h.createOwner)

		r.Post("/todos/{owner}", h.createTodo)
		r.Put("/todos/{id}", h.updateTodo)
		r.Delete("/todos/{id}", h.deleteTodo)
	})

	return router
}
