package repository

import (
	"fmt"
	"strings"
	"testing"

	"github.com/SeakMengs/PDFStudio/internal/model"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestRepository opens a throwaway in-memory sqlite database, named per
// test so parallel tests do not share state, and migrates the four tables.
func newTestRepository(t *testing.T) *Repository {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&model.Document{}, &model.Annotation{}, &model.Signature{}, &model.Project{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return NewRepository(db, zap.NewNop().Sugar())
}

func strPtr(s string) *string { return &s }
