package repository

import (
	"context"

	constant "github.com/SeakMengs/PDFStudio/internal/constant"
	"github.com/SeakMengs/PDFStudio/internal/model"
	"gorm.io/gorm"
)

type SignatureRepository struct {
	*baseRepository
}

func (sr SignatureRepository) Create(ctx context.Context, tx *gorm.DB, signature *model.Signature) (*model.Signature, error) {
	sr.logger.Debugf("Create signature with data: %v \n", signature)

	db := sr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.Signature{}).Create(signature).Error; err != nil {
		return signature, err
	}

	return signature, nil
}

// GetList returns every signature, or only those owned by userId when it is
// non-empty. userId is an opaque filter tag, not an access check.
func (sr SignatureRepository) GetList(ctx context.Context, tx *gorm.DB, userId string) ([]model.Signature, error) {
	sr.logger.Debugf("Get signatures with userId filter: %q \n", userId)

	db := sr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	query := db.WithContext(ctx).Model(&model.Signature{})
	if userId != "" {
		query = query.Where("user_id = ?", userId)
	}

	signatures := []model.Signature{}
	if err := query.Find(&signatures).Error; err != nil {
		return nil, err
	}

	return signatures, nil
}

func (sr SignatureRepository) Delete(ctx context.Context, tx *gorm.DB, id string) error {
	sr.logger.Debugf("Delete signature with id: %s \n", id)

	db := sr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	result := db.WithContext(ctx).Where("id = ?", id).Delete(&model.Signature{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
