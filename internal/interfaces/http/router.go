package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/academisoft/cronograma-api/internal/application/analytics"
	"github.com/academisoft/cronograma-api/internal/application/auth"
	"github.com/academisoft/cronograma-api/internal/application/usecase"
	"github.com/academisoft/cronograma-api/internal/domain/policy"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ScheduleUC  *usecase.ScheduleUseCase
	ReportUC    *usecase.ReportUseCase
	UserUC      *usecase.UserUseCase
	SubjectUC   *usecase.SubjectUseCase
	GroupUC     *usecase.GroupUseCase
	DashboardUC *analytics.DashboardUseCase
	JWTSecret   string
}

// Router registra las rutas de la API. El gate de rol por ruta sale de la
// tabla estática de política; los casos de uso la vuelven a consultar.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Schedules: /filtered se registra antes de /:id para que Fiber no lo
	// capture como parámetro.
	schedules := protected.Group("/schedules")
	scheduleHandler := NewScheduleHandler(deps.ScheduleUC, deps.ReportUC)
	schedules.Get("/", scheduleHandler.List)
	schedules.Get("/filtered", RequirePermission(policy.ActionReportRead), scheduleHandler.Filtered)
	schedules.Post("/", RequirePermission(policy.ActionScheduleCreate), scheduleHandler.Create)
	schedules.Get("/:id", scheduleHandler.GetByID)
	schedules.Patch("/:id/complete", RequirePermission(policy.ActionScheduleComplete), scheduleHandler.Complete)
	schedules.Patch("/:id", RequirePermission(policy.ActionScheduleUpdate), scheduleHandler.Update)
	schedules.Delete("/:id", RequirePermission(policy.ActionScheduleDelete), scheduleHandler.Delete)

	// Dashboard
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/stats", dashboardHandler.Stats)

	// Users: /teachers antes de /:id por la misma razón que /filtered.
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/teachers", userHandler.ListTeachers)
	users.Get("/", RequirePermission(policy.ActionUserUpdate), userHandler.List)
	users.Post("/", RequirePermission(policy.ActionUserCreate), userHandler.Create)
	users.Get("/:id", RequirePermission(policy.ActionUserUpdate), userHandler.GetByID)
	users.Patch("/:id", RequirePermission(policy.ActionUserUpdate), userHandler.Update)

	// Subjects
	subjects := protected.Group("/subjects")
	subjectHandler := NewSubjectHandler(deps.SubjectUC)
	subjects.Get("/", subjectHandler.List)
	subjects.Post("/", RequirePermission(policy.ActionSubjectCreate), subjectHandler.Create)
	subjects.Get("/:id", subjectHandler.GetByID)
	subjects.Patch("/:id", RequirePermission(policy.ActionSubjectCreate), subjectHandler.Update)

	// Groups
	groups := protected.Group("/groups")
	groupHandler := NewGroupHandler(deps.GroupUC)
	groups.Get("/", groupHandler.List)
	groups.Post("/", RequirePermission(policy.ActionGroupCreate), groupHandler.Create)
	groups.Get("/:id", groupHandler.GetByID)
	groups.Patch("/:id", RequirePermission(policy.ActionGroupCreate), groupHandler.Update)
}
