package controller

import (
	"errors"
	"net/http"

	"github.com/SeakMengs/PDFStudio/internal/model"
	"github.com/SeakMengs/PDFStudio/internal/util"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProjectController struct {
	*baseController
}

const (
	ErrProjectIdRequired = "project id is required"
	ErrProjectNotFound   = "Project not found"
)

func (pc ProjectController) CreateProject(ctx *gin.Context) {
	type Request struct {
		Name        string  `json:"name" binding:"required,strNotEmpty"`
		PDFID       string  `json:"pdf_id" binding:"required,strNotEmpty"`
		CurrentPage int     `json:"current_page" binding:"omitempty,gte=1"`
		ZoomLevel   float64 `json:"zoom_level" binding:"omitempty,gt=0"`
		UserID      string  `json:"user_id"`
	}
	var body Request

	if err := ctx.ShouldBindJSON(&body); err != nil {
		pc.app.Logger.Errorf("Failed to bind request: %v", err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	// pdf_id is not verified here either; a project may point at a document
	// that is gone, which GetProjectById then reports as 404.
	project := model.Project{
		Name:        body.Name,
		PDFID:       body.PDFID,
		CurrentPage: body.CurrentPage,
		ZoomLevel:   body.ZoomLevel,
		UserID:      body.UserID,
	}

	if _, err := pc.app.Repository.Project.Create(ctx, nil, &project); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to create project", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"project": project,
	})
}

// GetProjectById is the composite read: the project, its document and every
// annotation of that document in one response. A project whose document has
// been deleted out from under it is reported as not found, this is the one
// read path where a dangling reference is an error.
func (pc ProjectController) GetProjectById(ctx *gin.Context) {
	projectId := ctx.Params.ByName("projectId")
	if projectId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Project id is required", util.GenerateErrorMessages(errors.New(ErrProjectIdRequired), "projectId"), nil)
		return
	}

	project, err := pc.app.Repository.Project.GetById(ctx, nil, projectId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, ErrProjectNotFound, util.GenerateErrorMessages(errors.New(ErrProjectNotFound), "projectId"), nil)
			return
		}

		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get project", util.GenerateErrorMessages(err), nil)
		return
	}

	document, err := pc.app.Repository.Document.GetById(ctx, nil, project.PDFID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, ErrDocumentNotFound, util.GenerateErrorMessages(errors.New(ErrDocumentNotFound), "projectId"), nil)
			return
		}

		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get document", util.GenerateErrorMessages(err), nil)
		return
	}

	annotations, err := pc.app.Repository.Annotation.GetByPdfId(ctx, nil, project.PDFID)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get annotations", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"project":      project,
		"pdf_document": document,
		"annotations":  annotations,
	})
}

func (pc ProjectController) UpdateProject(ctx *gin.Context) {
	projectId := ctx.Params.ByName("projectId")
	if projectId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Project id is required", util.GenerateErrorMessages(errors.New(ErrProjectIdRequired), "projectId"), nil)
		return
	}

	var updates map[string]any
	if err := ctx.ShouldBindJSON(&updates); err != nil {
		pc.app.Logger.Errorf("Failed to bind request: %v", err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	project, err := pc.app.Repository.Project.Update(ctx, nil, projectId, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, ErrProjectNotFound, util.GenerateErrorMessages(errors.New(ErrProjectNotFound), "projectId"), nil)
			return
		}

		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to update project", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"project": project,
	})
}

func (pc ProjectController) GetProjects(ctx *gin.Context) {
	projects, err := pc.app.Repository.Project.GetList(ctx, nil, ctx.Query("user_id"))
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get projects", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"projects": projects,
		"count":    len(projects),
	})
}

func (pc ProjectController) DeleteProject(ctx *gin.Context) {
	projectId := ctx.Params.ByName("projectId")
	if projectId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Project id is required", util.GenerateErrorMessages(errors.New(ErrProjectIdRequired), "projectId"), nil)
		return
	}

	if err := pc.app.Repository.Project.Delete(ctx, nil, projectId); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, ErrProjectNotFound, util.GenerateErrorMessages(errors.New(ErrProjectNotFound), "projectId"), nil)
			return
		}

		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to delete project", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccessWithMessage(ctx, "Project deleted successfully", nil)
}
