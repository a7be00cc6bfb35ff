package main

import (
	"os"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "warehouse-backend/internal/adapter/http"
	"warehouse-backend/internal/adapter/middleware"
	"warehouse-backend/internal/adapter/repository/mysql"
	"warehouse-backend/internal/config"
	"warehouse-backend/internal/infrastructure/cache"
	"warehouse-backend/internal/infrastructure/db"
	"warehouse-backend/internal/infrastructure/logging"
	"warehouse-backend/internal/usecase/bulkedit"
	"warehouse-backend/internal/usecase/export"
	"warehouse-backend/internal/usecase/workflow"
)

const serviceName = "warehouse-api"

// version is stamped at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}
	log := logging.New(serviceName, logging.ParseLevel(cfg.LogLevel), os.Stdout)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	gormDB, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal().Err(err).Msg("open mysql")
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatal().Err(err).Msg("migrate")
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal().Err(err).Msg("open redis")
	}

	itemRepo := mysql.NewInventoryRepository(gormDB)
	entryRepo := mysql.NewJournalRepository(gormDB)
	tx := mysql.NewGormUoW(gormDB)

	workflowUC := workflow.NewUsecase(entryRepo, itemRepo, tx, log)
	bulkUC := bulkedit.NewUsecase(tx, log)
	exportUC := export.NewUsecase(entryRepo)

	h := httpadp.NewHealthHandler(serviceName, version)
	wf := httpadp.NewWorkflowHandler(workflowUC)
	inv := httpadp.NewInventoryHandler(workflowUC, bulkUC)
	exp := httpadp.NewExportHandler(exportUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	e.GET("/health", h.Health)

	idemp := middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	authed := e.Group("", middleware.Identity())
	authed.GET("/inventory", inv.List)
	authed.POST("/requests", wf.Submit, idemp)
	authed.GET("/logs/mine", wf.ListMyLogs)

	admin := e.Group("", middleware.Identity(), middleware.RequireAdmin())
	admin.PUT("/inventory", inv.BulkEdit, idemp)
	admin.POST("/inventory/actions", wf.AdminAction, idemp)
	admin.POST("/requests/:id/approve", wf.Approve, idemp)
	admin.POST("/requests/:id/reject", wf.Reject, idemp)
	admin.GET("/requests/pending", wf.ListPending)
	admin.GET("/requests/pending/count", wf.PendingCount)
	admin.GET("/logs", wf.ListLogs)
	admin.GET("/logs/export", exp.ExportLogs)
	admin.DELETE("/logs", wf.PurgeLogs)

	addr := ":" + cfg.AppPort
	log.Info().Str("addr", addr).Msg("listening")
	if err := e.Start(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
