package http

import (
	"net/http"

	"github.com/MKhiriev/go-todo-fetch/internal/utils"
)

// withTraceID attaches a request-scoped logger carrying trace_id to the
// request context. The id is taken from the X-Trace-ID header the client
// sends or generated, and echoed back in the response.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(utils.TraceIDHeader)
		if traceID == "" {
			traceID = utils.NewTraceID()
		}

		l := h.logger.WithTraceID(traceID)
		r = r.WithContext(l.WithContext(r.Context()))

		w.Header().Set(utils.TraceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
