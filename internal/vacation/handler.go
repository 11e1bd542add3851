package vacation

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
	ListAll(caller *auth.Caller) ([]*VacationRequest, error)
	ListForEmployee(caller *auth.Caller, employeeDNI string) ([]*VacationRequest, error)
	Create(ctx context.Context, caller *auth.Caller, employeeDNI string, dto *CreateVacationDTO) error
	Patch(ctx context.Context, caller *auth.Caller, vacationID int64, dto *PatchVacationDTO) error
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

func (h *Handler) ListVacations(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.CallerFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	vacations, err := h.Service.ListAll(caller)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, vacations)
}

func (h *Handler) ListEmployeeVacations(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.CallerFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	vacations, err := h.Service.ListForEmployee(caller, chi.URLParam(r, "employeeID"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, vacations)
}

func (h *Handler) CreateVacation(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.CallerFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto CreateVacationDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateVacation: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Service.Create(r.Context(), caller, chi.URLParam(r, "employeeID"), &dto); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteStatus(w, http.StatusNoContent)
}

func (h *Handler) PatchVacation(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.CallerFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	vacationID, err := strconv.ParseInt(chi.URLParam(r, "vacationID"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid vacation ID")
		return
	}

	var dto PatchVacationDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("PatchVacation: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Service.Patch(r.Context(), caller, vacationID, &dto); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteStatus(w, http.StatusNoContent)
}
