package project

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gestionat/hr-management/internal/auth"
	employeeDatamodel "github.com/gestionat/hr-management/internal/core/datamodel/employee"
	"github.com/gestionat/hr-management/internal/transport"
	"github.com/gestionat/hr-management/pkg/logger"
	"github.com/go-chi/chi"
)

// maxWorkplanSize caps the multipart memory buffer for workplan uploads.
const maxWorkplanSize = 32 << 20

type ServiceAPI interface {
	List(caller *auth.Caller) ([]*Project, error)
	Get(caller *auth.Caller, projectID int64) (*Project, error)
	Create(ctx context.Context, dto *CreateProjectDTO, workplanContent io.Reader) error
	ListProjectEmployees(caller *auth.Caller, projectID int64) ([]*employeeDatamodel.EmployeeWithPerson, error)
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

func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.CallerFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	projects, err := h.Service.List(caller)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, projects)
}

func (h *Handler) GetProject(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.CallerFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	projectID, err := h.projectIDParam(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid project ID")
		return
	}

	project, err := h.Service.Get(caller, projectID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, project)
}

// CreateProject accepts a multipart form whose single file field "roadmap"
// must be a PDF. The remaining fields travel as ordinary form values.
func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxWorkplanSize); err != nil {
		h.Logger.Error("CreateProject: invalid multipart form", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	dto, appErr := ParseCreateProjectForm(url.Values(r.MultipartForm.Value))
	if appErr != nil {
		h.HandleServiceError(w, appErr)
		return
	}

	file, header, err := r.FormFile("roadmap")
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "missing file roadmap")
		return
	}
	defer file.Close()

	if header.Header.Get("Content-Type") != "application/pdf" {
		h.WriteError(w, http.StatusBadRequest, "unexpected mime type, expected application/pdf")
		return
	}

	if err := h.Service.Create(r.Context(), dto, file); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteStatus(w, http.StatusNoContent)
}

func (h *Handler) ListProjectEmployees(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.CallerFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	projectID, err := h.projectIDParam(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid project ID")
		return
	}

	employees, err := h.Service.ListProjectEmployees(caller, projectID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	// an assigned-employee listing with no rows is empty, not missing
	if len(employees) == 0 {
		h.WriteStatus(w, http.StatusNoContent)
		return
	}

	h.WriteJSON(w, http.StatusOK, employees)
}

func (h *Handler) projectIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "projectID"), 10, 64)
}
