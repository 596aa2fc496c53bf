package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/cmlabs-hris/hris-admin-gateway/internal/config"
	appHTTP "github.com/cmlabs-hris/hris-admin-gateway/internal/handler/http"
	"github.com/cmlabs-hris/hris-admin-gateway/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-admin-gateway/internal/pkg/tokenstore"
	"github.com/cmlabs-hris/hris-admin-gateway/internal/upstream"
	attendanceService "github.com/cmlabs-hris/hris-admin-gateway/internal/service/attendance"
	serviceAuth "github.com/cmlabs-hris/hris-admin-gateway/internal/service/auth"
	employeeService "github.com/cmlabs-hris/hris-admin-gateway/internal/service/employee"
	notificationService "github.com/cmlabs-hris/hris-admin-gateway/internal/service/notification"
	workRuleService "github.com/cmlabs-hris/hris-admin-gateway/internal/service/workrule"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	var store tokenstore.Store
	switch cfg.TokenStore.Type {
	case "file":
		store, err = tokenstore.NewFileStore(cfg.TokenStore.FilePath, cfg.TokenStore.SealKey)
		if err != nil {
			log.Fatal("Failed to initialize file token store:", err)
		}
	case "postgres":
		pgStore, err := tokenstore.NewPostgresStore(context.Background(), cfg.DatabaseURL())
		if err != nil {
			log.Fatal("Failed to initialize postgres token store:", err)
		}
		defer pgStore.Close()
		store = pgStore
	case "memory":
		store = tokenstore.NewMemoryStore()
	default:
		log.Fatal("Unsupported token store type: ", cfg.TokenStore.Type)
	}

	upstreamClient := upstream.New(cfg.Upstream.BaseURL, cfg.Upstream.Timeout, store)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	authSvc := serviceAuth.NewAuthService(upstreamClient, store, JWTService)
	attendanceSvc := attendanceService.NewAttendanceService(upstreamClient)
	employeeSvc := employeeService.NewEmployeeService(upstreamClient)
	workRuleSvc := workRuleService.NewWorkRuleService(upstreamClient)
	notificationSvc := notificationService.NewNotificationService(upstreamClient)

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	workRuleHandler := appHTTP.NewWorkRuleHandler(workRuleSvc)
	notificationHandler := appHTTP.NewNotificationHandler(notificationSvc)

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		authHandler,
		attendanceHandler,
		employeeHandler,
		workRuleHandler,
		notificationHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
