package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "huskify-backend/internal/adapter/http"
	"huskify-backend/internal/adapter/middleware"
	"huskify-backend/internal/adapter/repository/mysql"
	"huskify-backend/internal/config"
	"huskify-backend/internal/infrastructure/cache"
	"huskify-backend/internal/infrastructure/db"
	approvalUC "huskify-backend/internal/usecase/approval"
	dashboardUC "huskify-backend/internal/usecase/dashboard"
	huskyUC "huskify-backend/internal/usecase/husky"
	userUC "huskify-backend/internal/usecase/user"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	huskyRepo := mysql.NewHuskyRepository(gdb)
	approvalRepo := mysql.NewApprovalRepository(gdb)
	userRepo := mysql.NewUserRepository(gdb)
	platformRepo := mysql.NewPlatformRepository(gdb)
	orgunitRepo := mysql.NewOrgUnitRepository(gdb)
	txRunner := mysql.NewGormUoW(gdb)

	huskies := huskyUC.NewUsecase(huskyRepo, approvalRepo)
	approvals := approvalUC.NewUsecase(huskyRepo, approvalRepo, txRunner)
	users := userUC.NewUsecase(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	dashboard := dashboardUC.NewUsecase(huskyRepo, approvalRepo, rdb,
		time.Duration(cfg.DashboardTTLSecs)*time.Second)

	health := httpadp.NewHandler()
	huskyH := httpadp.NewHuskyHandler(huskies)
	approvalH := httpadp.NewApprovalHandler(approvals)
	userH := httpadp.NewUserHandler(users)
	dashboardH := httpadp.NewDashboardHandler(dashboard)
	platformH := httpadp.NewPlatformHandler(platformRepo, orgunitRepo, cfg.PlatformAPIKey)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	auth := middleware.BearerAuth(users.ParseToken)
	idemp := middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	e.GET("/health", health.Health)
	e.GET("/api/platform", platformH.List)

	// account surface; registration resolves its platform from a header
	e.POST("/user/login", userH.Login)
	e.POST("/user/create", userH.Register, middleware.ResolvePlatform(platformRepo))
	e.GET("/user", userH.List, auth)
	e.GET("/user/:user_id", userH.Get, auth)

	api := e.Group("/api", auth)

	api.GET("/job-family", platformH.JobFamilies)
	api.GET("/lab", platformH.Labs)
	api.GET("/feature-team", platformH.FeatureTeams)

	api.POST("/husky", huskyH.Create, idemp)
	api.GET("/husky", huskyH.List)
	api.POST("/husky/duplicate-check", huskyH.DuplicateCheck)
	api.GET("/husky/user/:user_id", huskyH.ListByUser)
	api.GET("/husky/:husky_id", huskyH.Get)
	api.PUT("/husky/:husky_id", huskyH.Update, idemp)
	api.DELETE("/husky/:husky_id", huskyH.Delete, idemp)

	api.POST("/husky-approval", approvalH.CreateBatch, idemp)
	api.GET("/husky-approval", approvalH.ListAll)
	api.GET("/husky-approval/user/:user_id", approvalH.ListByUser)
	api.GET("/husky-approval/:husky_id", approvalH.Workflow)
	api.PUT("/husky-approval/:approval_id", approvalH.Decide, idemp)

	api.GET("/dashboard/total-husky", dashboardH.TotalHusky)
	api.GET("/dashboard/pending-approval", dashboardH.PendingApproval)
	api.GET("/dashboard/approved", dashboardH.Approved)
	api.GET("/dashboard/rejected", dashboardH.Rejected)
	api.GET("/dashboard/requests-by-department", dashboardH.RequestsByDepartment)
	api.GET("/dashboard/request-status-counts", dashboardH.RequestStatusCounts)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
