package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"construlab/config"
	"construlab/database"
	"construlab/internal/api/estimate"
	reportsapi "construlab/internal/api/reports"
	routes "construlab/internal/app/http"
	"construlab/internal/app/http/middleware"
	"construlab/internal/domain/materials"
	"construlab/internal/infra/logger"
	"construlab/internal/infra/mailer"
	"construlab/internal/infra/pdf"
	"construlab/internal/infra/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func main() {
	config.LoadEnv()
	logger.Setup(config.LOG_LEVEL, config.APP_ENV)
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	database.InitDB()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	initServices(ctx)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger())

	// CORS goes before the routes
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept-Language"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r)

	srv := &http.Server{
		Addr:              ":" + config.PORT,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithField("port", config.PORT).Info("construlab listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("http server")
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("graceful shutdown")
	}
}

// initServices replaces the package defaults with configured clients.
func initServices(ctx context.Context) {
	mailer.Default = mailer.New(mailer.SMTPConfig{
		Host:     config.SMTP_HOST,
		Port:     config.SMTP_PORT,
		From:     config.SMTP_FROM,
		Password: config.SMTP_PASSWORD,
	})

	presets, err := materials.LoadPresets(config.MATERIALS_PRESETS_FILE)
	if err != nil {
		log.WithError(err).Fatal("load material presets")
	}
	estimate.Presets = presets

	reportsapi.Renderer = pdf.NewChromeRenderer(config.CHROME_PATH)

	switch config.STORAGE_DRIVER {
	case "s3", "r2":
		up, err := storage.NewS3Uploader(ctx, storage.S3Config{
			Bucket:          config.S3_BUCKET,
			Endpoint:        config.S3_ENDPOINT,
			Region:          config.S3_REGION,
			AccessKeyID:     config.S3_ACCESS_KEY_ID,
			SecretAccessKey: config.S3_SECRET_KEY,
			PublicBaseURL:   config.S3_PUBLIC_URL,
		})
		if err != nil {
			log.WithError(err).Fatal("init object storage")
		}
		storage.Default = up
	case "local":
		up, err := storage.NewLocalUploader(config.LOCAL_STORAGE_DIR, config.APP_URL+"/uploads")
		if err != nil {
			log.WithError(err).Fatal("init local storage")
		}
		storage.Default = up
	default:
		log.WithField("driver", config.STORAGE_DRIVER).Warn("logo uploads disabled")
	}
}
