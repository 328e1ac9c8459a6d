package repository

import (
	"context"
	"time"

	constant "github.com/SeakMengs/PDFStudio/internal/constant"
	"github.com/SeakMengs/PDFStudio/internal/model"
	"gorm.io/gorm"
)

type ProjectRepository struct {
	*baseRepository
}

// pdf_id is deliberately absent: a project keeps pointing at the document it
// was created for.
var projectUpdatableColumns = []string{"name", "current_page", "zoom_level"}

func (pr ProjectRepository) Create(ctx context.Context, tx *gorm.DB, project *model.Project) (*model.Project, error) {
	pr.logger.Debugf("Create project with data: %v \n", project)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if err := db.WithContext(ctx).Model(&model.Project{}).Create(project).Error; err != nil {
		return project, err
	}

	return project, nil
}

func (pr ProjectRepository) GetById(ctx context.Context, tx *gorm.DB, id string) (*model.Project, error) {
	pr.logger.Debugf("Get project with id: %s \n", id)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	project := &model.Project{}
	if err := db.WithContext(ctx).Model(&model.Project{}).Where(&model.Project{
		BaseModel: model.BaseModel{
			ID: id,
		},
	}).First(project).Error; err != nil {
		return nil, err
	}

	return project, nil
}

// Update merges the supplied fields into an existing project and stamps
// last_modified unconditionally, even when the payload is empty. Existence
// is checked first; a no-op merge on an existing project succeeds.
func (pr ProjectRepository) Update(ctx context.Context, tx *gorm.DB, id string, updates map[string]any) (*model.Project, error) {
	pr.logger.Debugf("Update project %s with data: %v \n", id, updates)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	if _, err := pr.GetById(ctx, tx, id); err != nil {
		return nil, err
	}

	filtered := filterColumns(updates, projectUpdatableColumns)
	filtered["last_modified"] = time.Now().UTC()

	if err := db.WithContext(ctx).Model(&model.Project{}).Where("id = ?", id).
		Updates(filtered).Error; err != nil {
		return nil, err
	}

	return pr.GetById(ctx, tx, id)
}

func (pr ProjectRepository) GetList(ctx context.Context, tx *gorm.DB, userId string) ([]model.Project, error) {
	pr.logger.Debugf("Get projects with userId filter: %q \n", userId)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	query := db.WithContext(ctx).Model(&model.Project{})
	if userId != "" {
		query = query.Where("user_id = ?", userId)
	}

	projects := []model.Project{}
	if err := query.Find(&projects).Error; err != nil {
		return nil, err
	}

	return projects, nil
}

// Delete removes only the project. Its document and annotations are
// referenced, not owned, and survive.
func (pr ProjectRepository) Delete(ctx context.Context, tx *gorm.DB, id string) error {
	pr.logger.Debugf("Delete project with id: %s \n", id)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	result := db.WithContext(ctx).Where("id = ?", id).Delete(&model.Project{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
