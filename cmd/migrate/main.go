package main

import (
	"github.com/SeakMengs/PDFStudio/internal/config"
	"github.com/SeakMengs/PDFStudio/internal/database"
	"github.com/SeakMengs/PDFStudio/internal/env"
	"github.com/SeakMengs/PDFStudio/internal/model"
	"go.uber.org/zap"
)

func init() {
	env.LoadEnv(".env")
}

func main() {
	logger := zap.Must(zap.NewDevelopment()).Sugar()
	defer logger.Sync()
	cfg := config.GetConfig()

	logger.Infof("Database configuration: %+v", cfg.DB)

	db, err := database.ConnectReturnGormDB(cfg.DB)
	if err != nil {
		logger.Panic(err)
	}

	migrateErr := db.AutoMigrate(&model.Document{}, &model.Annotation{}, &model.Signature{}, &model.Project{})
	if migrateErr != nil {
		logger.Panic(migrateErr)
	}
}
