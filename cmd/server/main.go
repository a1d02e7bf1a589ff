package main

import (
	"context"
	"embed"
	"flag"
	"io/fs"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"weekly-check/internal/config"
	"weekly-check/internal/handler"
	"weekly-check/internal/logger"
	"weekly-check/internal/middleware"
	"weekly-check/internal/service"
	"weekly-check/internal/sheets"
)

//go:embed dist/*
var staticFS embed.FS

func main() {
	configFile := flag.String("config", "", "config file path (e.g. etc/config-dev.yaml)")
	flag.Parse()

	cfg := config.Load(*configFile)
	logger.Init(cfg.Log)

	store, err := sheets.New(context.Background(), cfg.Sheets.SpreadsheetID,
		cfg.Sheets.CredentialsFile, cfg.Sheets.CredentialsJSON)
	if err != nil {
		slog.Error("sheets client init failed", "err", err)
		os.Exit(1)
	}

	directorySvc := service.NewDirectoryService(store, cfg.Sheets.MembersRange)
	weekSvc := service.NewWeekService(store, cfg.Weeks, cfg.Sheets.WeeksRange)
	recordSvc := service.NewRecordService(store, cfg.Sheets.RecordsRange)
	submitSvc := service.NewSubmissionService(store, recordSvc, cfg.Sheets.RecordsRange)
	chartSvc := service.NewChartService(directorySvc, recordSvc)

	authH := handler.NewAuthHandler(directorySvc)
	boardH := handler.NewBoardHandler(weekSvc, recordSvc, chartSvc)
	submitH := handler.NewSubmissionHandler(weekSvc, submitSvc)

	r := gin.Default()
	r.Use(middleware.RequestID())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
	}))

	r.POST("/api/login", authH.Login)
	api := r.Group("/api", middleware.JWTAuth())
	api.GET("/weeks", boardH.Weeks)
	api.GET("/records", boardH.Records)
	api.GET("/chart", boardH.Chart)
	api.POST("/submissions", submitH.Submit)

	distFS, _ := fs.Sub(staticFS, "dist")
	r.NoRoute(gin.WrapH(http.FileServer(http.FS(distFS))))

	slog.Info("server starting", "addr", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		slog.Error("server failed", "err", err)
	}
}
