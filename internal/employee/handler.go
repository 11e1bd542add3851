package employee

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gestionat/hr-management/internal/auth"
	"github.com/gestionat/hr-management/internal/transport"
	"github.com/gestionat/hr-management/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	List(caller *auth.Caller, onProject *bool) ([]*Employee, error)
	Get(caller *auth.Caller, dni string) (*Employee, error)
	Create(ctx context.Context, caller *auth.Caller, dto *CreateEmployeeDTO) error
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
	}
}

func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.CallerFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var onProject *bool
	if raw := r.URL.Query().Get("onProject"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			h.WriteError(w, http.StatusBadRequest, "onProject must be a boolean")
			return
		}
		onProject = &v
	}

	employees, err := h.Service.List(caller, onProject)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, employees)
}

func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.CallerFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	dni := chi.URLParam(r, "employeeID")
	emp, err := h.Service.Get(caller, dni)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, emp)
}

func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.CallerFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto CreateEmployeeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateEmployee: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Service.Create(r.Context(), caller, &dto); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteStatus(w, http.StatusNoContent)
}
