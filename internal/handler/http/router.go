package http

import (
	"log/slog"
	"os"

	"github.com/fptrack/attendance-backend-go/internal/config"
	"github.com/fptrack/attendance-backend-go/internal/domain/auth"
	"github.com/fptrack/attendance-backend-go/internal/domain/user"
	"github.com/fptrack/attendance-backend-go/internal/handler/http/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

type Handlers struct {
	Auth       *AuthHandler
	Kiosk      *KioskHandler
	Attendance *AttendanceHandler
	Employee   *EmployeeHandler
	User       *UserHandler
	Report     *ReportHandler
}

func NewRouter(cfg *config.Config, authService auth.AuthService, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "fptrack"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-API-Key"},
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

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)

			r.Group(func(r chi.Router) {
				r.Use(middleware.AuthRequired(authService))
				r.Post("/logout", h.Auth.Logout)
			})
		})

		// Kiosk devices authenticate by API key, not assertions
		r.Route("/device", func(r chi.Router) {
			r.Use(middleware.RequireDeviceKey(cfg.Device.APIKey))
			r.Post("/attendance/mark", h.Kiosk.Mark)
			r.Post("/attendance/clock-in", h.Kiosk.ClockIn)
			r.Post("/attendance/clock-out", h.Kiosk.ClockOut)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthRequired(authService))

			r.Route("/attendance", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAction(user.ActionViewReports))
					r.Get("/", h.Attendance.List)
					r.Get("/employees-status", h.Attendance.EmployeesStatus)
					r.Get("/summary", h.Report.DailySummary)
					r.Get("/monthly", h.Report.MonthlySeries)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAction(user.ActionManualAttendance))
					r.Post("/manual/clock-in", h.Attendance.ManualClockIn)
					r.Post("/manual/clock-out", h.Attendance.ManualClockOut)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAction(user.ActionCorrectAttendance))
					r.Put("/{id}", h.Attendance.Correct)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAction(user.ActionViewEmployees))
					r.Get("/", h.Employee.List)
					r.Get("/{id}", h.Employee.Get)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAction(user.ActionManageEmployees))
					r.Post("/", h.Employee.Create)
					r.Put("/{id}", h.Employee.Update)
					r.Delete("/{id}", h.Employee.Delete)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAction(user.ActionEnrollFingerprint))
					r.Post("/{id}/fingerprint", h.Employee.EnrollFingerprint)
				})
			})

			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.RequireAction(user.ActionManageAccounts))
				r.Get("/", h.User.List)
				r.Post("/{id}/approve", h.User.Approve)
				r.Post("/{id}/promote", h.User.Promote)
				r.Post("/{id}/demote", h.User.Demote)
				r.Delete("/{id}", h.User.Delete)
			})
		})
	})

	return r
}
