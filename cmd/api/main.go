package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/fptrack/attendance-backend-go/internal/config"
	"github.com/fptrack/attendance-backend-go/internal/domain/user"
	appHTTP "github.com/fptrack/attendance-backend-go/internal/handler/http"
	"github.com/fptrack/attendance-backend-go/internal/pkg/database"
	"github.com/fptrack/attendance-backend-go/internal/pkg/fingerprint"
	"github.com/fptrack/attendance-backend-go/internal/pkg/jwt"
	"github.com/fptrack/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/fptrack/attendance-backend-go/internal/service/attendance"
	authService "github.com/fptrack/attendance-backend-go/internal/service/auth"
	employeeService "github.com/fptrack/attendance-backend-go/internal/service/employee"
	reportService "github.com/fptrack/attendance-backend-go/internal/service/report"
	userService "github.com/fptrack/attendance-backend-go/internal/service/user"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	reportRepo := postgresql.NewReportRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiration)
	digester := fingerprint.NewDigester(cfg.Device.FingerprintKey)
	calculator := attendanceService.NewCalculator(cfg.Attendance.StandardShiftMinutes)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	userSvc := userService.NewUserService(userRepo)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, attendanceRepo, digester)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, employeeSvc, calculator)
	reportSvc := reportService.NewReportService(reportRepo, employeeRepo, cfg.Attendance.OnTimeCutoff)

	if err := seedPrimaryAdmin(context.Background(), userRepo, cfg.Admin); err != nil {
		log.Fatal("Failed to seed primary admin: ", err)
	}

	handlers := appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc),
		Kiosk:      appHTTP.NewKioskHandler(attendanceSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		User:       appHTTP.NewUserHandler(userSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
	}

	router := appHTTP.NewRouter(cfg, authSvc, handlers)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

// seedPrimaryAdmin ensures the configured primary admin account exists and
// is active. An existing account is left untouched so a changed env password
// never silently rotates credentials.
func seedPrimaryAdmin(ctx context.Context, userRepo user.UserRepository, admin config.AdminConfig) error {
	_, err := userRepo.GetByUsername(ctx, admin.Username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, user.ErrUserNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	return userRepo.Create(ctx, &user.User{
		Username:     admin.Username,
		PasswordHash: string(hash),
		Role:         user.RolePrimaryAdmin,
		IsActive:     true,
	})
}
