package repository

import (
	"context"

	constant "github.com/SeakMengs/PDFStudio/internal/constant"
	"github.com/SeakMengs/PDFStudio/internal/model"
	"gorm.io/gorm"
)

type DocumentRepository struct {
	*baseRepository
}

func (dr DocumentRepository) Create(ctx context.Context, tx *gorm.DB, document *model.Document) (*model.Document, error) {
	dr.logger.Debugf("Create document with data: %v \n", document)

	db := dr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.Document{}).Create(document).Error; err != nil {
		return document, err
	}

	return document, nil
}

func (dr DocumentRepository) GetById(ctx context.Context, tx *gorm.DB, id string) (*model.Document, error) {
	dr.logger.Debugf("Get document with id: %s \n", id)

	db := dr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	document := &model.Document{}
	if err := db.WithContext(ctx).Model(&model.Document{}).Where(&model.Document{
		BaseModel: model.BaseModel{
			ID: id,
		},
	}).First(document).Error; err != nil {
		return nil, err
	}

	return document, nil
}

// DeleteCascade removes the document row together with every annotation and
// project that references it, in one transaction. The existence check runs
// first so a missing document aborts before anything is touched. Returns the
// deleted document so the caller can clean up the stored blob afterwards.
func (dr DocumentRepository) DeleteCascade(ctx context.Context, tx *gorm.DB, id string) (*model.Document, error) {
	dr.logger.Debugf("Delete document with id: %s including its annotations and projects \n", id)

	db := dr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	document, err := dr.GetById(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	err = dr.withTx(db, func(tx *gorm.DB) error {
		if err := tx.WithContext(ctx).Where("id = ?", id).Delete(&model.Document{}).Error; err != nil {
			return err
		}

		if err := tx.WithContext(ctx).Where("pdf_id = ?", id).Delete(&model.Annotation{}).Error; err != nil {
			return err
		}

		if err := tx.WithContext(ctx).Where("pdf_id = ?", id).Delete(&model.Project{}).Error; err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return document, nil
}
