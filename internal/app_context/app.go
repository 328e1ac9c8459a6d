package appcontext

import (
	"github.com/SeakMengs/PDFStudio/internal/config"
	filestorage "github.com/SeakMengs/PDFStudio/internal/file_storage"
	"github.com/SeakMengs/PDFStudio/internal/repository"
	"go.uber.org/zap"
)

// Application contains core dependencies for the app.
type Application struct {
	// Config holds application settings provided from .env file.
	Config *config.Config

	Logger *zap.SugaredLogger

	// Repository provides access to data storage operations.
	Repository *repository.Repository

	// Storage persists the uploaded PDF blobs (local disk or s3).
	Storage filestorage.Storage
}
