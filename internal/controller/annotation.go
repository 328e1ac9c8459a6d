package controller

import (
	"errors"
	"net/http"

	"github.com/SeakMengs/PDFStudio/internal/model"
	"github.com/SeakMengs/PDFStudio/internal/util"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AnnotationController struct {
	*baseController
}

const (
	ErrAnnotationIdRequired = "annotation id is required"
	ErrAnnotationNotFound   = "Annotation not found"
)

func (ac AnnotationController) CreateAnnotation(ctx *gin.Context) {
	type Request struct {
		PDFID     string   `json:"pdf_id" binding:"required,strNotEmpty"`
		Type      string   `json:"type" binding:"required,strNotEmpty"`
		X         float64  `json:"x"`
		Y         float64  `json:"y"`
		Width     *float64 `json:"width"`
		Height    *float64 `json:"height"`
		Text      *string  `json:"text"`
		FontSize  *int     `json:"font_size"`
		Color     *string  `json:"color"`
		ImageData *string  `json:"image_data"`
		Page      int      `json:"page" binding:"required,gte=1"`
		Layer     int      `json:"layer"`
		UserID    string   `json:"user_id"`
	}
	var body Request

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ac.app.Logger.Errorf("Failed to bind request: %v", err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	// pdf_id is taken as-is. Nothing checks that the document exists;
	// orphaned annotations are allowed and cleaned up by the cascade.
	annotation := model.Annotation{
		PDFID:     body.PDFID,
		Type:      body.Type,
		X:         body.X,
		Y:         body.Y,
		Width:     body.Width,
		Height:    body.Height,
		Text:      body.Text,
		FontSize:  body.FontSize,
		Color:     body.Color,
		ImageData: body.ImageData,
		Page:      body.Page,
		Layer:     body.Layer,
		UserID:    body.UserID,
	}

	if _, err := ac.app.Repository.Annotation.Create(ctx, nil, &annotation); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to create annotation", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"annotation": annotation,
	})
}

func (ac AnnotationController) GetAnnotationsByPdf(ctx *gin.Context) {
	pdfId := ctx.Params.ByName("pdfId")
	if pdfId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "PDF id is required", util.GenerateErrorMessages(errors.New("pdf id is required"), "pdfId"), nil)
		return
	}

	annotations, err := ac.app.Repository.Annotation.GetByPdfId(ctx, nil, pdfId)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get annotations", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"annotations": annotations,
		"count":       len(annotations),
	})
}

func (ac AnnotationController) UpdateAnnotation(ctx *gin.Context) {
	annotationId := ctx.Params.ByName("annotationId")
	if annotationId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Annotation id is required", util.GenerateErrorMessages(errors.New(ErrAnnotationIdRequired), "annotationId"), nil)
		return
	}

	// Arbitrary field map, merged onto the record. Unknown keys are dropped
	// by the repository whitelist.
	var updates map[string]any
	if err := ctx.ShouldBindJSON(&updates); err != nil {
		ac.app.Logger.Errorf("Failed to bind request: %v", err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	annotation, err := ac.app.Repository.Annotation.Update(ctx, nil, annotationId, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, ErrAnnotationNotFound, util.GenerateErrorMessages(errors.New(ErrAnnotationNotFound), "annotationId"), nil)
			return
		}

		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to update annotation", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"annotation": annotation,
	})
}

func (ac AnnotationController) DeleteAnnotation(ctx *gin.Context) {
	annotationId := ctx.Params.ByName("annotationId")
	if annotationId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Annotation id is required", util.GenerateErrorMessages(errors.New(ErrAnnotationIdRequired), "annotationId"), nil)
		return
	}

	if err := ac.app.Repository.Annotation.Delete(ctx, nil, annotationId); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, ErrAnnotationNotFound, util.GenerateErrorMessages(errors.New(ErrAnnotationNotFound), "annotationId"), nil)
			return
		}

		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to delete annotation", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccessWithMessage(ctx, "Annotation deleted successfully", nil)
}
