package rest

import (
	"log/slog"

	"github.com/frahmantamala/employee-directory/internal/auth"
	"github.com/frahmantamala/employee-directory/internal/department"
	"github.com/frahmantamala/employee-directory/internal/employee"
	"github.com/frahmantamala/employee-directory/internal/role"
	"github.com/frahmantamala/employee-directory/internal/transport/middleware"
	"github.com/frahmantamala/employee-directory/internal/transport/swagger"
	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
)

// Handlers groups everything RegisterAllRoutes mounts. OpenAPI is optional.
type Handlers struct {
	Auth       *auth.Handler
	Department *department.Handler
	Role       *role.Handler
	Employee   *employee.Handler
	Health     *HealthHandler
	OpenAPI    *swagger.Document
}

func RegisterAllRoutes(router *chi.Mux, h Handlers, allowedOrigins string, logger *slog.Logger) {
	router.Use(middleware.CORS(allowedOrigins))
	router.Use(chiMiddleware.RealIP)
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	if h.OpenAPI != nil {
		router.Handle(swagger.SpecURL, h.OpenAPI)
		router.Handle("/swagger/*", swagger.Handler())
	}

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", h.Health.Health)
		r.Get("/ping", h.Health.Ping)

		r.Post("/auth/login", h.Auth.Login)

		r.Group(func(pr chi.Router) {
			pr.Use(h.Auth.AuthMiddleware)

			pr.Route("/department", func(dr chi.Router) {
				dr.Get("/get/all", h.Department.GetAllDepartments)
				dr.Get("/get/{id}", h.Department.GetDepartment)
				dr.Post("/create", h.Department.CreateDepartment)
				dr.Put("/update/{id}", h.Department.UpdateDepartment)
				dr.Delete("/delete/{id}", h.Department.DeleteDepartment)
			})

			pr.Route("/roles", func(rr chi.Router) {
				rr.Get("/get/all", h.Role.GetAllRoles)
				rr.Get("/get/{id}", h.Role.GetRole)
				rr.Post("/create", h.Role.CreateRole)
				rr.Put("/update/{id}", h.Role.UpdateRole)
				rr.Delete("/delete/{id}", h.Role.DeleteRole)
			})

			pr.Route("/employees", func(er chi.Router) {
				er.Get("/get/all", h.Employee.GetAllEmployees)
				er.Get("/get/id/{id}", h.Employee.GetEmployee)
				er.Get("/get/email/{email}", h.Employee.GetEmployeeByEmail)
				er.Post("/create", h.Employee.CreateEmployee)
				er.Put("/update/{id}", h.Employee.UpdateEmployee)
				er.Delete("/delete/{id}", h.Employee.DeleteEmployee)
			})

			pr.Get("/manager/roles/department", h.Department.ViewEmployeesInDepartment)
		})
	})
}
