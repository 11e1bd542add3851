package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/gestionat/hr-management/internal/auth"
	"github.com/gestionat/hr-management/internal/detour"
	"github.com/gestionat/hr-management/internal/employee"
	"github.com/gestionat/hr-management/internal/project"
	"github.com/gestionat/hr-management/internal/task"
	"github.com/gestionat/hr-management/internal/transport/middleware"
	"github.com/gestionat/hr-management/internal/transport/swagger"
	"github.com/gestionat/hr-management/internal/vacation"
	"github.com/go-chi/chi"
)

// RegisterAllRoutes wires every handler under /api/v1. Everything except
// login, health and the API docs sits behind the auth middleware.
func RegisterAllRoutes(router *chi.Mux, db *sql.DB, authHandler *auth.Handler, employeeHandler *employee.Handler, taskHandler *task.Handler, vacationHandler *vacation.Handler, projectHandler *project.Handler, detourHandler *detour.Handler, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Post("/auth/login", authHandler.Login)

		r.Group(func(pr chi.Router) {
			pr.Use(authHandler.AuthMiddleware)

			pr.Route("/employees", func(er chi.Router) {
				er.Get("/", employeeHandler.ListEmployees)
				er.Post("/", employeeHandler.CreateEmployee)
				er.Get("/{employeeID}", employeeHandler.GetEmployee)

				er.Get("/{employeeID}/tasks", taskHandler.ListEmployeeTasks)
				er.Post("/{employeeID}/tasks", taskHandler.CreateEmployeeTask)

				er.Get("/{employeeID}/vacations", vacationHandler.ListEmployeeVacations)
				er.Post("/{employeeID}/vacations", vacationHandler.CreateVacation)
			})

			pr.Route("/vacations", func(vr chi.Router) {
				vr.Get("/", vacationHandler.ListVacations)
				vr.Patch("/{vacationID}", vacationHandler.PatchVacation)
			})

			pr.Route("/projects", func(jr chi.Router) {
				jr.Get("/", projectHandler.ListProjects)
				jr.Post("/", projectHandler.CreateProject)
				jr.Get("/{projectID}", projectHandler.GetProject)

				jr.Get("/{projectID}/employees", projectHandler.ListProjectEmployees)
				jr.Get("/{projectID}/tasks", taskHandler.ListProjectTasks)

				jr.Get("/{projectID}/detours", detourHandler.ListProjectDetours)
				jr.Post("/{projectID}/detours", detourHandler.CreateProjectDetour)
			})
		})
	})
}
