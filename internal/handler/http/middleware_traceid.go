package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// traceIDHeader carries the request trace identifier in both directions:
// honored when a client sends it, echoed back on every response.
const traceIDHeader = "X-Trace-ID"

// withTraceID assigns each request a trace identifier and threads a
// request-scoped logger carrying it through the context, so every log line
// written while handling the request can be correlated. A client-supplied
// X-Trace-ID is kept as-is, which lets a client tie its retries together;
// otherwise a fresh UUID is generated.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(l.WithContext(r.Context())))
	})
}
