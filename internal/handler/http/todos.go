package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-todo-fetch/internal/logger"
	"github.com/MKhiriev/go-todo-fetch/internal/utils"
	"github.com/MKhiriev/go-todo-fetch/models"
)

func (h *Handler) getOwnerTodos(w http.ResponseWriter, r *http.Request) {
	owner := chi.URLParam(r, "owner")

	list, err := h.services.TodoService.ListTodos(r.Context(), owner)
	if err != nil {
		writeError(w, r, err, "*Handler.getOwnerTodos")
		return
	}

	h.respond(w, r, list, http.StatusOK)
}

func (h *Handler) createOwner(w http.ResponseWriter, r *http.Request) {
	owner := chi.URLParam(r, "owner")

	if err := h.services.TodoService.CreateOwner(r.Context(), owner); err != nil {
		writeError(w, r, err, "*Handler.createOwner")
		return
	}

	h.respond(w, r, models.OwnerList{Name: owner, Todos: []models.Task{}}, http.StatusCreated)
}

func (h *Handler) createTodo(w http.ResponseWriter, r *http.Request) {
	owner := chi.URLParam(r, "owner")

	req, err := decodeLabel(r)
	if err != nil {
		writeError(w, r, err, "*Handler.createTodo")
		return
	}

	todo, err := h.services.TodoService.CreateTodo(r.Context(), owner, req.Label)
	if err != nil {
		writeError(w, r, err, "*Handler.createTodo")
		return
	}

	h.respond(w, r, todo, http.StatusCreated)
}

func (h *Handler) updateTodo(w http.ResponseWriter, r *http.Request) {
	id, err := todoID(r)
	if err != nil {
		writeError(w, r, err, "*Handler.updateTodo")
		return
	}

	req, err := decodeLabel(r)
	if err != nil {
		writeError(w, r, err, "*Handler.updateTodo")
		return
	}

	todo, err := h.services.TodoService.UpdateTodo(r.Context(), id, req.Label)
	if err != nil {
		writeError(w, r, err, "*Handler.updateTodo")
		return
	}

	h.respond(w, r, todo, http.StatusOK)
}

func (h *Handler) deleteTodo(w http.ResponseWriter, r *http.Request) {
	id, err := todoID(r)
	if err != nil {
		writeError(w, r, err, "*Handler.deleteTodo")
		return
	}

	if err = h.services.TodoService.DeleteTodo(r.Context(), id); err != nil {
		writeError(w, r, err, "*Handler.deleteTodo")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.respond").Msg("error writing response")
	}
}

func decodeLabel(r *http.Request) (models.LabelRequest, error) {
	var req models.LabelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return models.LabelRequest{}, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return req, nil
}

func todoID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTodoID, chi.URLParam(r, "id"))
	}
	return id, nil
}
