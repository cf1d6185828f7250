package http

import (
	"log/slog"
	"os"

	"github.com/amaralkaff/payslip-generation-system-sub000/internal/handler/http/middleware"
	"github.com/amaralkaff/payslip-generation-system-sub000/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	JWTService jwt.Service,
	authHandler AuthHandler,
	periodHandler PeriodHandler,
	attendanceHandler AttendanceHandler,
	overtimeHandler OvertimeHandler,
	reimbursementHandler ReimbursementHandler,
	payrollHandler PayrollHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "payslip-generation-system"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/periods", func(r chi.Router) {
				r.Get("/active", periodHandler.GetActive)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", periodHandler.List)
					r.Post("/", periodHandler.Create)
					r.Patch("/{id}/deactivate", periodHandler.Deactivate)
				})
			})

			r.Route("/attendances", func(r chi.Router) {
				r.Post("/", attendanceHandler.Submit)
				r.Get("/my", attendanceHandler.ListMine)
			})

			r.Route("/overtimes", func(r chi.Router) {
				r.Post("/", overtimeHandler.Submit)
				r.Get("/my", overtimeHandler.ListMine)
			})

			r.Route("/reimbursements", func(r chi.Router) {
				r.Post("/", reimbursementHandler.Submit)
				r.Get("/my", reimbursementHandler.ListMine)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Patch("/{id}/status", reimbursementHandler.UpdateStatus)
				})
			})

			r.Route("/payrolls", func(r chi.Router) {
				r.Get("/{periodId}/payslip", payrollHandler.GetMyPayslip)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", payrollHandler.Process)
					r.Get("/{periodId}/summary", payrollHandler.GetSummary)
				})
			})
		})
	})
	return r
}
