package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gestionat/hr-management/internal"
	"github.com/gestionat/hr-management/internal/auth"
	authPostgres "github.com/gestionat/hr-management/internal/auth/postgres"
	"github.com/gestionat/hr-management/internal/core/events"
	"github.com/gestionat/hr-management/internal/detour"
	detourPostgres "github.com/gestionat/hr-management/internal/detour/postgres"
	"github.com/gestionat/hr-management/internal/employee"
	employeePostgres "github.com/gestionat/hr-management/internal/employee/postgres"
	"github.com/gestionat/hr-management/internal/project"
	projectPostgres "github.com/gestionat/hr-management/internal/project/postgres"
	"github.com/gestionat/hr-management/internal/task"
	taskPostgres "github.com/gestionat/hr-management/internal/task/postgres"
	"github.com/gestionat/hr-management/internal/transport/rest"
	"github.com/gestionat/hr-management/internal/vacation"
	vacationPostgres "github.com/gestionat/hr-management/internal/vacation/postgres"
	"github.com/gestionat/hr-management/pkg/logger"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	DB     *sqlx.DB
	GormDB *gorm.DB
	Router *chi.Mux
	Logger *slog.Logger

	AuthHandler     *auth.Handler
	EmployeeHandler *employee.Handler
	TaskHandler     *task.Handler
	VacationHandler *vacation.Handler
	ProjectHandler  *project.Handler
	DetourHandler   *detour.Handler
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	rest.RegisterAllRoutes(deps.Router, deps.DB.DB,
		deps.AuthHandler,
		deps.EmployeeHandler,
		deps.TaskHandler,
		deps.VacationHandler,
		deps.ProjectHandler,
		deps.DetourHandler,
		deps.Logger)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("Starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("Server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			deps.Logger.Error("Database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("Server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.Observability.Logging.Level, config.Observability.Logging.Format)
	appLogger := logger.LoggerWrapper()

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gormDB, err := initGorm(db)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize orm: %w", err)
	}

	bus := events.NewEventBus(appLogger)
	events.RegisterAuditLogger(bus, appLogger)

	tokenGen := &auth.JWTTokenGenerator{
		Secret:         []byte(config.Security.JWTSecret),
		AccessTokenTTL: config.Security.AccessTokenDuration,
	}
	authService := auth.NewService(authPostgres.NewRepository(gormDB), tokenGen, appLogger)

	employeeService := employee.NewService(employeePostgres.NewEmployeeRepository(gormDB), bus, config.Security.BCryptCost, appLogger)
	taskService := task.NewService(taskPostgres.NewTaskRepository(gormDB), bus, appLogger)
	vacationService := vacation.NewService(vacationPostgres.NewVacationRepository(gormDB), bus, appLogger)
	projectService := project.NewService(projectPostgres.NewProjectRepository(gormDB), bus, appLogger)
	detourService := detour.NewService(detourPostgres.NewDetourRepository(gormDB), bus, appLogger)

	return &Dependencies{
		Config: config,
		Logger: appLogger,
		DB:     db,
		GormDB: gormDB,
		Router: chi.NewRouter(),

		AuthHandler:     auth.NewHandler(authService),
		EmployeeHandler: employee.NewHandler(employeeService),
		TaskHandler:     task.NewHandler(taskService),
		VacationHandler: vacation.NewHandler(vacationService),
		ProjectHandler:  project.NewHandler(projectService),
		DetourHandler:   detour.NewHandler(detourService),
	}, nil
}

// initDB opens the pgx connection used for health checks and hands the same
// pool to GORM.
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	dbConn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}

func initGorm(db *sqlx.DB) (*gorm.DB, error) {
	return gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: db.DB}), &gorm.Config{})
}
