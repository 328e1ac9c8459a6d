package repository

import (
	"context"

	constant "github.com/SeakMengs/PDFStudio/internal/constant"
	"github.com/SeakMengs/PDFStudio/internal/model"
	"gorm.io/gorm"
)

type AnnotationRepository struct {
	*baseRepository
}

// Columns an untyped update payload may touch. id and the audit timestamps
// stay server-managed.
var annotationUpdatableColumns = []string{
	"pdf_id", "type", "x", "y", "width", "height", "text",
	"font_size", "color", "image_data", "page", "layer", "user_id",
}

func (ar AnnotationRepository) Create(ctx context.Context, tx *gorm.DB, annotation *model.Annotation) (*model.Annotation, error) {
	ar.logger.Debugf("Create annotation with data: %v \n", annotation)

	db := ar.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.Annotation{}).Create(annotation).Error; err != nil {
		return annotation, err
	}

	return annotation, nil
}

func (ar AnnotationRepository) GetById(ctx context.Context, tx *gorm.DB, id string) (*model.Annotation, error) {
	ar.logger.Debugf("Get annotation with id: %s \n", id)

	db := ar.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	annotation := &model.Annotation{}
	if err := db.WithContext(ctx).Model(&model.Annotation{}).Where(&model.Annotation{
		BaseModel: model.BaseModel{
			ID: id,
		},
	}).First(annotation).Error; err != nil {
		return nil, err
	}

	return annotation, nil
}

func (ar AnnotationRepository) GetByPdfId(ctx context.Context, tx *gorm.DB, pdfId string) ([]model.Annotation, error) {
	ar.logger.Debugf("Get annotations with pdfId: %s \n", pdfId)

	db := ar.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	annotations := []model.Annotation{}
	if err := db.WithContext(ctx).Model(&model.Annotation{}).Where("pdf_id = ?", pdfId).
		Find(&annotations).Error; err != nil {
		return nil, err
	}

	return annotations, nil
}

// Update merges the supplied fields into an existing annotation. Existence
// is checked up front instead of being inferred from the affected row count,
// so a merge that changes nothing still succeeds. Returns the record as
// stored after the merge.
func (ar AnnotationRepository) Update(ctx context.Context, tx *gorm.DB, id string, updates map[string]any) (*model.Annotation, error) {
	ar.logger.Debugf("Update annotation %s with data: %v \n", id, updates)

	db := ar.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if _, err := ar.GetById(ctx, tx, id); err != nil {
		return nil, err
	}

	filtered := filterColumns(updates, annotationUpdatableColumns)
	if len(filtered) > 0 {
		if err := db.WithContext(ctx).Model(&model.Annotation{}).Where("id = ?", id).
			Updates(filtered).Error; err != nil {
			return nil, err
		}
	}

	return ar.GetById(ctx, tx, id)
}

func (ar AnnotationRepository) Delete(ctx context.Context, tx *gorm.DB, id string) error {
	ar.logger.Debugf("Delete annotation with id: %s \n", id)

	db := ar.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	result := db.WithContext(ctx).Where("id = ?", id).Delete(&model.Annotation{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
