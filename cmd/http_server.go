package cmd

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/frahmantamala/employee-directory/internal"
	"github.com/frahmantamala/employee-directory/internal/auth"
	"github.com/frahmantamala/employee-directory/internal/core/events"
	"github.com/frahmantamala/employee-directory/internal/department"
	departmentPostgres "github.com/frahmantamala/employee-directory/internal/department/postgres"
	"github.com/frahmantamala/employee-directory/internal/employee"
	employeePostgres "github.com/frahmantamala/employee-directory/internal/employee/postgres"
	"github.com/frahmantamala/employee-directory/internal/role"
	rolePostgres "github.com/frahmantamala/employee-directory/internal/role/postgres"
	"github.com/frahmantamala/employee-directory/internal/transport"
	"github.com/frahmantamala/employee-directory/internal/transport/rest"
	"github.com/frahmantamala/employee-directory/internal/transport/swagger"
	"github.com/frahmantamala/employee-directory/pkg/logger"

	"github.com/go-chi/chi"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
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
	Config   *internal.Config
	DB       *gorm.DB
	SQLDB    *sql.DB
	Router   *chi.Mux
	EventBus *events.EventBus
	Handlers rest.Handlers
	Logger   *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	rest.RegisterAllRoutes(deps.Router, deps.Handlers, deps.Config.Server.AllowedOrigins, deps.Logger)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("Starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:              addr,
		Handler:           deps.Router,
		ReadHeaderTimeout: deps.Config.Server.ReadHeaderTimeout,
		ReadTimeout:       deps.Config.Server.ReadTimeout,
		WriteTimeout:      deps.Config.Server.WriteTimeout,
		IdleTimeout:       deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
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
		// let in-flight audit handlers finish before the pool goes away
		deps.EventBus.Wait()
		if err := deps.SQLDB.Close(); err != nil {
			deps.Logger.Error("Database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			deps.Logger.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("Server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	lg := logger.Configure(os.Stdout, config.Observability.Logging.Level, config.Observability.Logging.Format)

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql db: %w", err)
	}

	eventBus := events.NewEventBus(lg)
	eventBus.SubscribeAll(events.DirectoryEventTypes, events.AuditLogHandler(lg))

	departmentRepo := departmentPostgres.NewDepartmentRepository(db)
	roleRepo := rolePostgres.NewRoleRepository(db)
	employeeRepo := employeePostgres.NewEmployeeRepository(db)

	hasher := auth.NewBcryptHasher(config.Security.BCryptCost)
	tokenGen := auth.NewJWTTokenGenerator(config.Security.JWTSecret, config.Security.AccessTokenDuration)

	references := employee.NewReferenceValidator(departmentRepo, roleRepo)
	employeeService := employee.NewService(employeeRepo, references, hasher, config.Security.DefaultEmployeePassword, eventBus, lg)

	gate := auth.NewRosterGate(employeeRepo, roleRepo, departmentRepo, auth.NewPrivilegeChecker(), lg)
	departmentService := department.NewService(departmentRepo, employeeRepo, gate, eventBus, lg)
	roleService := role.NewService(roleRepo, eventBus, lg)
	authService := auth.NewService(employeeService, hasher, tokenGen, lg)

	base := transport.NewBaseHandler(lg)
	handlers := rest.Handlers{
		Auth:       auth.NewHandler(base, authService),
		Department: department.NewHandler(base, departmentService),
		Role:       role.NewHandler(base, roleService),
		Employee:   employee.NewHandler(base, employeeService),
		Health:     rest.NewHealthHandler(sqlDB),
	}

	if path := config.Server.OpenAPIPath; path != "" {
		doc, err := swagger.LoadDocument(context.Background(), path)
		if err != nil {
			return nil, fmt.Errorf("failed to load openapi document: %w", err)
		}
		lg.Info("serving openapi document", "title", doc.Title(), "paths", doc.PathCount())
		handlers.OpenAPI = doc
	}

	return &Dependencies{
		Config:   config,
		DB:       db,
		SQLDB:    sqlDB,
		Router:   chi.NewRouter(),
		EventBus: eventBus,
		Handlers: handlers,
		Logger:   lg,
	}, nil
}

// initDB opens the gorm postgres connection and applies the pool settings.
func initDB(cfg internal.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.GetDSN()), &gorm.Config{
		Logger:         gormLogger.Default.LogMode(gormLogger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql db: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	// verify connection; close underlying *sql.DB on failure
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}
