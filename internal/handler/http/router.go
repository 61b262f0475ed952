package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/hrmpro/hrm-backend-go/internal/handler/http/middleware"
	"github.com/hrmpro/hrm-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	Employee   EmployeeHandler
	Attendance AttendanceHandler
	Client     ClientHandler
	Master     MasterHandler
	Payroll    PayrollHandler
	Dashboard  DashboardHandler
	View       ViewHandler
}

func NewRouter(jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hrm-pro"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Post("/auth/login", h.Auth.Login)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Post("/auth/logout", h.Auth.Logout)
			r.Get("/auth/session", h.Auth.Session)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.Post("/", h.Employee.Create)
				r.Put("/{employeeID}", h.Employee.Update)
				r.Delete("/{employeeID}", h.Employee.Delete)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/", h.Attendance.Get)
				r.Post("/", h.Attendance.Mark)
			})

			r.Route("/clients", func(r chi.Router) {
				r.Get("/", h.Client.List)
				r.Get("/{clientID}/tasks", h.Client.ListTasksByClient)

				// Super admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireSuperAdmin)
					r.Post("/", h.Client.Create)
				})
			})

			r.Route("/client-tasks", func(r chi.Router) {
				r.Get("/", h.Client.ListTasks)
				r.Post("/", h.Client.CreateTask)
			})

			r.Route("/companies", func(r chi.Router) {
				r.Get("/", h.Master.ListCompanies)

				// Super admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireSuperAdmin)
					r.Post("/", h.Master.CreateCompany)
				})
			})

			r.Route("/locations", func(r chi.Router) {
				r.Get("/", h.Master.ListLocations)

				// Super admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireSuperAdmin)
					r.Post("/", h.Master.CreateLocation)
				})
			})

			r.Route("/shifts", func(r chi.Router) {
				r.Get("/", h.Master.ListShifts)
				r.Route("/assignments", func(r chi.Router) {
					r.Get("/", h.Master.ListShiftAssignments)
					r.Post("/", h.Master.AssignShift)
				})
			})

			r.Get("/holidays", h.Master.ListHolidays)
			r.Get("/reminders", h.Master.ListReminders)

			r.Get("/payroll", h.Payroll.GetCompanyPayroll)
			r.Get("/dashboard", h.Dashboard.GetOverview)

			r.Get("/navigation", h.View.Navigation)
			r.Route("/views", func(r chi.Router) {
				r.Get("/current", h.View.CurrentView)
				r.Post("/{viewID}", h.View.SetView)
			})
		})
	})
	return r
}
