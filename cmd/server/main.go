package main

import (
	"encoding/base64"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	basestore "github.com/syduc993/hr-management-system-sub000/basestore/v1"
	"github.com/syduc993/hr-management-system-sub000/cache"
	"github.com/syduc993/hr-management-system-sub000/config"
	"github.com/syduc993/hr-management-system-sub000/core"
	"github.com/syduc993/hr-management-system-sub000/timekit"
	"github.com/syduc993/hr-management-system-sub000/web/handlers"
	"github.com/syduc993/hr-management-system-sub000/web/middlewares"
)

func main() {
	configPath := flag.String("config", os.Getenv("HR_CONFIG_FILE"), "path to yaml config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if cfg.Store.BaseURL == "" || cfg.Store.Token == "" {
		log.Fatal("store baseUrl and token are required")
	}

	jwtSecret, err := base64.StdEncoding.DecodeString(cfg.Server.SigningSecret)
	if err != nil {
		log.Fatal("failed to decode signing secret:", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	client := basestore.NewClient(cfg.Store.BaseURL, cfg.Store.Token)
	tn := timekit.NewNormalizer(nil)
	c := cache.New()
	ttl := cfg.CacheTTL()

	attendance := core.NewAttendanceService(client.Tables, c, tn, logger, ttl)
	workHistory := core.NewWorkHistoryService(client.Tables, c, tn, logger, ttl)
	recruitment := core.NewRecruitmentService(client.Tables, c, tn, logger, ttl)

	r := gin.Default()

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	protected := r.Group("/api/v1")
	protected.Use(middlewares.Authentication(jwtSecret))
	handlers.Register(protected, attendance, workHistory, recruitment, tn)

	logger.Info("starting server", "addr", cfg.Server.Addr)
	if err := r.Run(cfg.Server.Addr); err != nil {
		log.Fatal(err)
	}
}
