package repository

import (
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type baseRepository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

type Repository struct {
	// DB can be used for transaction. Example usage:
	// tx := r.DB.Begin()
	// defer tx.Commit()
	// Then pass tx to the repository function. and use tx.Rollback() if error occurred
	DB         *gorm.DB
	Document   *DocumentRepository
	Annotation *AnnotationRepository
	Signature  *SignatureRepository
	Project    *ProjectRepository
}

func newBaseRepository(db *gorm.DB, logger *zap.SugaredLogger) *baseRepository {
	return &baseRepository{db: db, logger: logger}
}

func NewRepository(db *gorm.DB, logger *zap.SugaredLogger) *Repository {
	br := newBaseRepository(db, logger)

	return &Repository{
		DB:         db,
		Document:   &DocumentRepository{baseRepository: br},
		Annotation: &AnnotationRepository{baseRepository: br},
		Signature:  &SignatureRepository{baseRepository: br},
		Project:    &ProjectRepository{baseRepository: br},
	}
}

func (b baseRepository) withTx(db *gorm.DB, fn func(*gorm.DB) error) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		return fn(tx)
	})

	if err != nil {
		b.logger.Errorf("withTx Transaction error: %v", err)
	}

	return err
}

func (b baseRepository) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}

	return b.db
}

// filterColumns keeps only whitelisted keys of an untyped update payload.
// Clients send arbitrary field maps; anything we do not recognize as an
// updatable column is silently dropped rather than turned into a SQL error.
func filterColumns(updates map[string]any, allowed []string) map[string]any {
	filtered := make(map[string]any, len(updates))
	for _, col := range allowed {
		if val, ok := updates[col]; ok {
			filtered[col] = val
		}
	}
	return filtered
}
