package task

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
	ListForEmployee(caller *auth.Caller, employeeDNI string, filter ListTasksFilter) ([]*Task, error)
	ListForProject(caller *auth.Caller, projectID int64) ([]*Task, error)
	Create(ctx context.Context, caller *auth.Caller, employeeDNI string, dto *CreateTaskDTO) error
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

func (h *Handler) ListEmployeeTasks(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.CallerFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	filter := ListTasksFilter{
		FromCurrentProjectOnly: queryFlag(r, "fromCurrentProjectOnly"),
		CompletedOnly:          queryFlag(r, "completedOnly"),
	}

	tasks, err := h.Service.ListForEmployee(caller, chi.URLParam(r, "employeeID"), filter)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, tasks)
}

func (h *Handler) CreateEmployeeTask(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.CallerFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto CreateTaskDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateEmployeeTask: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Service.Create(r.Context(), caller, chi.URLParam(r, "employeeID"), &dto); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteStatus(w, http.StatusNoContent)
}

func (h *Handler) ListProjectTasks(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.CallerFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	projectID, err := strconv.ParseInt(chi.URLParam(r, "projectID"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid project ID")
		return
	}

	tasks, err := h.Service.ListForProject(caller, projectID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, tasks)
}

// queryFlag reads a boolean query parameter. Only a parseable true value
// enables the flag; other non-empty values are treated as false rather
// than as presence.
func queryFlag(r *http.Request, name string) bool {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return false
	}
	v, err := strconv.ParseBool(raw)
	return err == nil && v
}
