package transport

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gestionat/hr-management/internal"
	"github.com/gestionat/hr-management/pkg/logger"
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

// WriteStatus writes a bodyless response. Authorization denials, not-found
// lookups and successful writes all answer with a bare status code.
func (h *BaseHandler) WriteStatus(w http.ResponseWriter, status int) {
	w.WriteHeader(status)
}

// WriteError writes an error response
func (h *BaseHandler) WriteError(w http.ResponseWriter, status int, message string) {
	h.Logger.Error("http error", "status", status, "message", message)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	errorResp := map[string]interface{}{
		"code":    status,
		"message": message,
	}

	if err := json.NewEncoder(w).Encode(errorResp); err != nil {
		h.Logger.Error("failed to encode error response", "error", err)
	}
}

// HandleServiceError maps service-layer errors onto the uniform response
// contract: forbidden and not-found answer with empty bodies, validation
// failures name the offending field, anything else surfaces as a 500 with
// the error text.
func (h *BaseHandler) HandleServiceError(w http.ResponseWriter, err error) {
	if appErr, ok := internal.IsAppError(err); ok {
		switch appErr.Type {
		case internal.ErrorTypeForbidden, internal.ErrorTypeNotFound:
			h.WriteStatus(w, appErr.StatusCode)
		case internal.ErrorTypeValidation:
			if appErr.StatusCode == http.StatusNoContent {
				h.WriteStatus(w, http.StatusNoContent)
				return
			}
			h.WriteError(w, appErr.StatusCode, appErr.GetDetailedMessage())
		default:
			h.WriteError(w, appErr.StatusCode, appErr.Error())
		}
		return
	}
	h.WriteError(w, http.StatusInternalServerError, err.Error())
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
