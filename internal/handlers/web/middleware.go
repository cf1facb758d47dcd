package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/KirkDiggler/ceelo/internal/services/admin"
	"github.com/KirkDiggler/ceelo/internal/services/round"
	"github.com/go-chi/chi/v5/middleware"
)

// maxBodyBytes bounds every JSON request body
const maxBodyBytes = 64 << 10

// withLogging logs each request with its status and duration
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		h.log.Info("request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// requireAdmin rejects requests without a live admin bearer token
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		err := h.adminService.Authorize(r.Context(), &admin.AuthorizeInput{
			Token: bearerToken(r),
		})
		if err != nil {
			h.writeError(w, err)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// bearerToken extracts the token from an Authorization: Bearer header
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// errorResponse is the body of every non-2xx JSON reply
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// jsonResponse writes a JSON response
func (h *Handler) jsonResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error("failed to encode JSON response", "error", err)
	}
}

// errorJSON writes a JSON error response
func (h *Handler) errorJSON(w http.ResponseWriter, statusCode int, message string) {
	h.jsonResponse(w, statusCode, errorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	})
}

// writeError maps a service error to its status code
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.log.Error("request failed", "error", err)
	}

	message := err.Error()
	if status == http.StatusInternalServerError && !errors.Is(err, round.ErrAllocationExhausted) {
		message = "internal error"
	}
	h.errorJSON(w, status, message)
}

// parseJSONBody decodes a bounded request body into v
func parseJSONBody(w http.ResponseWriter, r *http.Request, v any) error {
	defer r.Body.Close()
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	return dec.Decode(v)
}
