package http

import (
	"log/slog"
	"os"

	"github.com/cmlabs-hris/hris-admin-gateway/internal/config"
	"github.com/cmlabs-hris/hris-admin-gateway/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hris-admin-gateway/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	attendanceHandler AttendanceHandler,
	employeeHandler EmployeeHandler,
	workRuleHandler WorkRuleHandler,
	notificationHandler NotificationHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hris-admin-gateway"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  logLevel(cfg.App.LogLevel),
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.Refresh)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Post("/auth/logout", authHandler.Logout)

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/daily", attendanceHandler.Daily)
				r.Get("/history", attendanceHandler.History)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Post("/", employeeHandler.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", employeeHandler.Get)
					r.Put("/", employeeHandler.Update)
					r.Delete("/", employeeHandler.Delete)
				})
			})

			r.Route("/work-rules", func(r chi.Router) {
				r.Get("/", workRuleHandler.ListWorkRules)
				r.Post("/", workRuleHandler.CreateWorkRule)
				r.Put("/{id}", workRuleHandler.UpdateWorkRule)
				r.Delete("/{id}", workRuleHandler.DeleteWorkRule)
			})

			r.Route("/shifts", func(r chi.Router) {
				r.Get("/", workRuleHandler.ListShifts)
				r.Post("/", workRuleHandler.CreateShift)
				r.Put("/{id}", workRuleHandler.UpdateShift)
				r.Delete("/{id}", workRuleHandler.DeleteShift)
			})

			r.Route("/salaries", func(r chi.Router) {
				r.Get("/", workRuleHandler.ListSalaryConfigs)
				r.Put("/", workRuleHandler.UpsertSalaryConfig)
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Post("/whatsapp", notificationHandler.SendWhatsApp)
				r.Get("/templates", notificationHandler.ListTemplates)
			})
		})
	})
	return r
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
