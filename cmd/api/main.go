package main

import (
	"context"

	appcontext "github.com/SeakMengs/PDFStudio/internal/app_context"
	"github.com/SeakMengs/PDFStudio/internal/config"
	"github.com/SeakMengs/PDFStudio/internal/controller"
	"github.com/SeakMengs/PDFStudio/internal/database"
	"github.com/SeakMengs/PDFStudio/internal/env"
	filestorage "github.com/SeakMengs/PDFStudio/internal/file_storage"
	"github.com/SeakMengs/PDFStudio/internal/middleware"
	ratelimiter "github.com/SeakMengs/PDFStudio/internal/rate_limiter"
	"github.com/SeakMengs/PDFStudio/internal/repository"
	"github.com/SeakMengs/PDFStudio/internal/route"
	"github.com/SeakMengs/PDFStudio/internal/util"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// this function run before main
func init() {
	env.LoadEnv(".env")
}

func main() {
	cfg := config.GetConfig()

	logger := util.NewLogger(cfg.ENV)
	logger.Debugf("Configuration: %+v \n", cfg)

	db, err := database.ConnectReturnGormDB(cfg.DB)
	if err != nil {
		logger.Panic(err)
	}

	sqlDb, err := db.DB()
	if err != nil {
		logger.Panic(err)
	}
	defer sqlDb.Close()
	logger.Info("Database connected \n")

	var storage filestorage.Storage
	switch cfg.Storage.DRIVER {
	case config.StorageDriverS3:
		storage, err = filestorage.NewMinioStorage(context.Background(), &cfg.Storage.Minio)
	default:
		storage, err = filestorage.NewLocalStorage(cfg.Storage.LOCAL_DIR)
	}
	if err != nil {
		logger.Error("Error setting up file storage")
		logger.Panic(err)
	}

	// Custom validation
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("strNotEmpty", util.StrNotEmpty); err != nil {
			return
		}
	}

	rateLimiter := ratelimiter.NewRateLimiter(cfg.RateLimiter, logger)
	repo := repository.NewRepository(db, logger)
	app := appcontext.Application{
		Config:     &cfg,
		Repository: repo,
		Logger:     logger,
		Storage:    storage,
	}

	_middleware := middleware.NewMiddleware(&app, rateLimiter)

	if cfg.ENV == "production" {
		logger.Info("Running in production mode")
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-Requested-With", "Accept"}
	r.Use(cors.New(corsConfig))
	r.Use(_middleware.RequestIdMiddleware)
	r.Use(_middleware.RateLimiterMiddleware)

	_controller := controller.NewController(&app)

	r.GET("/", _controller.Index.Index)

	// The frontend calls /pdf/... directly, no version prefix.
	rApi := r.Group("")

	route.Pdf_Documents(rApi, _controller.Document)
	route.Pdf_Annotations(rApi, _controller.Annotation)
	route.Pdf_Signatures(rApi, _controller.Signature)
	route.Pdf_Projects(rApi, _controller.Project)

	if err := r.Run("0.0.0.0:" + app.Config.Port); err != nil {
		logger.Panic("Error running server: %v \n", err)
	}
}
