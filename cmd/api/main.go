package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/amaralkaff/payslip-generation-system-sub000/internal/config"
	appHTTP "github.com/amaralkaff/payslip-generation-system-sub000/internal/handler/http"
	"github.com/amaralkaff/payslip-generation-system-sub000/internal/pkg/audit"
	"github.com/amaralkaff/payslip-generation-system-sub000/internal/pkg/database"
	"github.com/amaralkaff/payslip-generation-system-sub000/internal/pkg/jwt"
	"github.com/amaralkaff/payslip-generation-system-sub000/internal/repository/postgresql"
	attendanceService "github.com/amaralkaff/payslip-generation-system-sub000/internal/service/attendance"
	authService "github.com/amaralkaff/payslip-generation-system-sub000/internal/service/auth"
	overtimeService "github.com/amaralkaff/payslip-generation-system-sub000/internal/service/overtime"
	payrollService "github.com/amaralkaff/payslip-generation-system-sub000/internal/service/payroll"
	periodService "github.com/amaralkaff/payslip-generation-system-sub000/internal/service/period"
	reimbursementService "github.com/amaralkaff/payslip-generation-system-sub000/internal/service/reimbursement"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	periodRepo := postgresql.NewPeriodRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	overtimeRepo := postgresql.NewOvertimeRepository(db)
	reimbursementRepo := postgresql.NewReimbursementRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	recorder := audit.NewSlogRecorder(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	authSvc := authService.NewAuthService(db, userRepo, JWTService)
	periodSvc := periodService.NewPeriodService(db, periodRepo, recorder)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, periodRepo, recorder)
	overtimeSvc := overtimeService.NewOvertimeService(db, overtimeRepo, periodRepo, recorder)
	reimbursementSvc := reimbursementService.NewReimbursementService(db, reimbursementRepo, periodRepo, recorder)
	payrollSvc := payrollService.NewPayrollService(
		db, payrollRepo, periodRepo, userRepo,
		attendanceRepo, overtimeRepo, reimbursementRepo, recorder,
	)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	periodHandler := appHTTP.NewPeriodHandler(periodSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	overtimeHandler := appHTTP.NewOvertimeHandler(overtimeSvc)
	reimbursementHandler := appHTTP.NewReimbursementHandler(reimbursementSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		periodHandler,
		attendanceHandler,
		overtimeHandler,
		reimbursementHandler,
		payrollHandler,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "addr", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}
