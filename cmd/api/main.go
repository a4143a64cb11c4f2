package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/presensi-magang/attendance-backend-go/internal/config"
	appHTTP "github.com/presensi-magang/attendance-backend-go/internal/handler/http"
	"github.com/presensi-magang/attendance-backend-go/internal/pkg/cron"
	"github.com/presensi-magang/attendance-backend-go/internal/pkg/database"
	"github.com/presensi-magang/attendance-backend-go/internal/pkg/jwt"
	"github.com/presensi-magang/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/presensi-magang/attendance-backend-go/internal/service/attendance"
	authService "github.com/presensi-magang/attendance-backend-go/internal/service/auth"
	internService "github.com/presensi-magang/attendance-backend-go/internal/service/intern"
	reportService "github.com/presensi-magang/attendance-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	loc, err := cfg.Location()
	if err != nil {
		fmt.Println("Error loading timezone:", err)
		return
	}

	db, err := database.Connect(context.Background(), cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	internRepo := postgresql.NewInternRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	reportRepo := postgresql.NewReportRepository(db)
	adminRepo := postgresql.NewAdminRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	internSvc := internService.NewInternService(internRepo, reportRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, internRepo, loc)
	reportSvc := reportService.NewReportService(reportRepo, loc)
	authSvc := authService.NewAuthService(adminRepo, jwtService)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	internHandler := appHTTP.NewInternHandler(internSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		authHandler,
		internHandler,
		attendanceHandler,
		reportHandler,
	)

	scheduler := cron.NewScheduler(loc)
	cron.NewAttendanceJobs(attendanceRepo, cfg.Sweeper, loc).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
