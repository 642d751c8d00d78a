package http

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-todo-fetch/internal/app"
	"github.com/MKhiriev/go-todo-fetch/internal/logger"
	"github.com/MKhiriev/go-todo-fetch/internal/service"
	"github.com/MKhiriev/go-todo-fetch/internal/store"
	"github.com/MKhiriev/go-todo-fetch/internal/utils"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:   http.StatusBadRequest,
	ErrInvalidTodoID: http.StatusBadRequest,

	service.ErrInvalidDataProvided: http.StatusUnprocessableEntity,
	service.ErrOwnerAlreadyExists:  http.StatusBadRequest,
	service.ErrTodoNotFound:        http.StatusNotFound,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with its mapped status. Internal failures
// are reported with a generic message.
func writeError(w http.ResponseWriter, r *http.Request, err error, fn string) {
	status := statusFromError(err)

	level := zerolog.WarnLevel
	if status >= http.StatusInternalServerError {
		level = zerolog.ErrorLevel
	}
	logger.FromRequest(r).WithLevel(level).Err(err).Str("func", fn).Int("status", status).Msg("request failed")

	msg := err.Error()
	if status >= http.StatusInternalServerError {
		msg = app.MsgInternalServerError
	}
	utils.WriteJSONError(w, msg, status)
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSONError(w, app.MsgNotFound, http.StatusNotFound)
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSONError(w, app.MsgMethodNotAllowed, http.StatusMethodNotAllowed)
}
