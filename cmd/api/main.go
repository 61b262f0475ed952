package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/hrmpro/hrm-backend-go/internal/config"
	"github.com/hrmpro/hrm-backend-go/internal/fixtures"
	appHTTP "github.com/hrmpro/hrm-backend-go/internal/handler/http"
	"github.com/hrmpro/hrm-backend-go/internal/pkg/database"
	"github.com/hrmpro/hrm-backend-go/internal/pkg/jwt"
	"github.com/hrmpro/hrm-backend-go/internal/repository/boltdb"
	authService "github.com/hrmpro/hrm-backend-go/internal/service/auth"
	dashboardService "github.com/hrmpro/hrm-backend-go/internal/service/dashboard"
	payrollService "github.com/hrmpro/hrm-backend-go/internal/service/payroll"
	storeService "github.com/hrmpro/hrm-backend-go/internal/service/store"
	viewService "github.com/hrmpro/hrm-backend-go/internal/service/view"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewBoltDB(cfg.Database.Path)
	if err != nil {
		fmt.Println("Error opening state database:", err)
		return
	}
	defer db.Close()

	documentRepo := boltdb.NewDocumentRepository(db)
	store := storeService.NewStoreService(context.Background(), documentRepo, fixtures.SeedDocument())

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	sessionService := authService.NewSessionService(store, JWTService)
	payrollSvc := payrollService.NewPayrollService(store)
	dashboardSvc := dashboardService.NewDashboardService(store)

	sink := viewService.NewLogSink(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	viewRouter := viewService.NewRouter(store, sink, cfg.View.TransitionDelay)
	viewService.RegisterDefaults(viewRouter)

	handlers := appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(sessionService, viewRouter),
		Employee:   appHTTP.NewEmployeeHandler(store),
		Attendance: appHTTP.NewAttendanceHandler(store),
		Client:     appHTTP.NewClientHandler(store),
		Master:     appHTTP.NewMasterHandler(store),
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
		View:       appHTTP.NewViewHandler(sessionService, viewRouter),
	}

	router := appHTTP.NewRouter(JWTService, handlers)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
