package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ltnam/fashion-store/internal/obs"
	"github.com/ltnam/fashion-store/internal/port"
)

type authedHandler func(w http.ResponseWriter, r *http.Request, ident port.Identity)

// requireUser resolves the bearer token and hands the identity to the
// wrapped handler.
func (a *App) requireUser(next authedHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			writeMessage(w, http.StatusUnauthorized, "missing bearer token")
			return
		}
		ident, err := a.Auth.Identify(r.Context(), token)
		if err != nil {
			writeError(w, err)
			return
		}
		next(w, r, ident)
	}
}

// requireAdmin additionally checks the admin role.
func (a *App) requireAdmin(next authedHandler) http.HandlerFunc {
	return a.requireUser(func(w http.ResponseWriter, r *http.Request, ident port.Identity) {
		if !ident.IsAdmin() {
			writeMessage(w, http.StatusForbidden, "admin access required")
			return
		}
		next(w, r, ident)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (w *statusRecorder) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get("X-Request-Id")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", reqID)
		next.ServeHTTP(w, r)
	})
}

func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sr := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sr, r)
		obs.Logger.Info("http_request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sr.status,
			"latency_ms", float64(time.Since(start).Microseconds())/1000.0,
			"request_id", w.Header().Get("X-Request-Id"),
		)
	})
}
