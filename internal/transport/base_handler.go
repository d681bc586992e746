package transport

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/frahmantamala/employee-directory/internal"
	"github.com/frahmantamala/employee-directory/pkg/logger"
	"github.com/go-chi/chi"
)

const (
	MessageInvalidID   = "Invalid id, pass in correct data"
	MessageInvalidBody = "Invalid request body, pass in correct data"
)

// BaseHandler provides common functionality for HTTP handlers
type BaseHandler struct {
	Logger *slog.Logger
}

// NewBaseHandler creates a base handler with logger
func NewBaseHandler(lg *slog.Logger) *BaseHandler {
	if lg == nil {
		lg = logger.LoggerWrapper()
		if lg == nil {
			lg = slog.Default()
		}
	}
	return &BaseHandler{Logger: lg}
}

// WriteJSON writes a JSON response
func (h *BaseHandler) WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Logger.Error("failed to encode JSON response", "error", err)
	}
}

// WriteResponse writes the envelope with the status derived from its code.
func (h *BaseHandler) WriteResponse(w http.ResponseWriter, resp *internal.APIResponse) {
	h.WriteJSON(w, resp.HTTPStatus(), resp)
}

// WriteCreated is WriteResponse for create endpoints: 201 on success, 400 otherwise.
func (h *BaseHandler) WriteCreated(w http.ResponseWriter, resp *internal.APIResponse) {
	if resp.IsSuccess() {
		h.WriteJSON(w, http.StatusCreated, resp)
		return
	}
	h.WriteJSON(w, http.StatusBadRequest, resp)
}

// WriteError writes a "99" envelope with the given status.
func (h *BaseHandler) WriteError(w http.ResponseWriter, status int, message string) {
	h.Logger.Warn("http error", "status", status, "message", message)
	h.WriteJSON(w, status, internal.Failed(message))
}

// ParseID reads a positive int64 path parameter. On failure it writes the
// error response and returns false.
func (h *BaseHandler) ParseID(w http.ResponseWriter, r *http.Request, param string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil || id <= 0 {
		h.WriteError(w, http.StatusBadRequest, MessageInvalidID)
		return 0, false
	}
	return id, true
}

// DecodeJSON decodes the request body into dst. On failure it writes the
// error response and returns false.
func (h *BaseHandler) DecodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.Logger.Debug("failed to decode request body", "error", err, "path", r.URL.Path)
		h.WriteError(w, http.StatusBadRequest, MessageInvalidBody)
		return false
	}
	return true
}

// ExtractTokenFromHeader extracts Bearer token from Authorization header
func (h *BaseHandler) ExtractTokenFromHeader(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return ""
	}

	return authHeader[7:]
}
