package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/presensi-magang/attendance-backend-go/internal/config"
	"github.com/presensi-magang/attendance-backend-go/internal/handler/http/middleware"
	"github.com/presensi-magang/attendance-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	internHandler InternHandler,
	attendanceHandler AttendanceHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "presensi-magang"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
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

	r.Route("/api", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
		})

		// Kiosk endpoints used by the check-in tablet, no auth
		r.Route("/interns", func(r chi.Router) {
			r.Get("/", internHandler.List)
			r.Get("/{id}", internHandler.Get)

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AdminOnly(jwtService.JWTAuth()))
				r.Post("/", internHandler.Create)
				r.Delete("/{id}", internHandler.Delete)
			})
		})

		r.Route("/attendance", func(r chi.Router) {
			r.Get("/shifts", attendanceHandler.Shifts)
			r.Get("/today/{internId}", attendanceHandler.Today)
			r.Get("/history/{internId}", attendanceHandler.History)
			r.Post("/checkin", attendanceHandler.CheckIn)
			r.Post("/checkout", attendanceHandler.CheckOut)
			r.Post("/izin", attendanceHandler.RequestLeave)

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AdminOnly(jwtService.JWTAuth()))
				r.Get("/", attendanceHandler.List)
			})
		})

		// Admin only
		r.Route("/reports", func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AdminOnly(jwtService.JWTAuth()))
			r.Get("/summary", reportHandler.Summary)
			r.Get("/daily", reportHandler.Daily)
		})
	})

	return r
}
