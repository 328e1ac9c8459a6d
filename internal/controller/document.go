package controller

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"net/http"

	"github.com/SeakMengs/PDFStudio/internal/constant"
	"github.com/SeakMengs/PDFStudio/internal/model"
	"github.com/SeakMengs/PDFStudio/internal/util"
	"github.com/SeakMengs/PDFStudio/pkg/pdfinfo"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DocumentController struct {
	*baseController
}

const (
	ErrDocumentIdRequired = "document id is required"
	ErrDocumentNotFound   = "PDF document not found"
)

func (dc DocumentController) UploadPdf(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		dc.app.Logger.Errorf("Failed to read uploaded file: %v", err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "No file uploaded", util.GenerateErrorMessages(errors.New("file is required"), "file"), nil)
		return
	}

	if fileHeader.Filename == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "No filename provided", util.GenerateErrorMessages(errors.New("filename must not be empty"), "file"), nil)
		return
	}

	if fileHeader.Header.Get("Content-Type") != constant.PDF_CONTENT_TYPE {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Only PDF files are allowed", util.GenerateErrorMessages(errors.New("content type must be application/pdf"), "file"), nil)
		return
	}

	if fileHeader.Size > dc.app.Config.Upload.MaxFileSize {
		util.ResponseFailed(ctx, http.StatusBadRequest, "File size exceeds 100MB limit", util.GenerateErrorMessages(errors.New("file too large"), "file"), nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to read uploaded file", util.GenerateErrorMessages(err), nil)
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to read uploaded file", util.GenerateErrorMessages(err), nil)
		return
	}

	// The blob key embeds the record id, so the id is assigned here rather
	// than by the model hook.
	id := uuid.NewString()
	storedName := util.BuildStoredFilename(id, fileHeader.Filename)

	storedPath, err := dc.app.Storage.Save(ctx, storedName, bytes.NewReader(content), int64(len(content)), constant.PDF_CONTENT_TYPE)
	if err != nil {
		dc.app.Logger.Errorf("Failed to store uploaded file: %v", err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to store uploaded file", util.GenerateErrorMessages(err), nil)
		return
	}

	document := model.Document{
		BaseModel:        model.BaseModel{ID: id},
		FileName:         storedName,
		OriginalFilename: fileHeader.Filename,
		FileSize:         int64(len(content)),
		FilePath:         storedPath,
		TotalPages:       pdfinfo.PageCount(content),
		CurrentPage:      1,
		UserID:           ctx.PostForm("user_id"),
	}

	if _, err := dc.app.Repository.Document.Create(ctx, nil, &document); err != nil {
		// keep storage consistent with the record store
		if removeErr := dc.app.Storage.Remove(ctx, storedName); removeErr != nil {
			dc.app.Logger.Errorf("Failed to remove orphaned blob %s: %v", storedName, removeErr)
		}

		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to create document", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccessWithMessage(ctx, "PDF uploaded successfully", gin.H{
		"document": document,
	})
}

func (dc DocumentController) GetDocumentById(ctx *gin.Context) {
	documentId := ctx.Params.ByName("documentId")
	if documentId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Document id is required", util.GenerateErrorMessages(errors.New(ErrDocumentIdRequired), "documentId"), nil)
		return
	}

	document, err := dc.app.Repository.Document.GetById(ctx, nil, documentId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, ErrDocumentNotFound, util.GenerateErrorMessages(errors.New(ErrDocumentNotFound), "documentId"), nil)
			return
		}

		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get document", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"document": document,
	})
}

func (dc DocumentController) ServePdfFile(ctx *gin.Context) {
	documentId := ctx.Params.ByName("documentId")
	if documentId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Document id is required", util.GenerateErrorMessages(errors.New(ErrDocumentIdRequired), "documentId"), nil)
		return
	}

	document, err := dc.app.Repository.Document.GetById(ctx, nil, documentId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "PDF file not found", util.GenerateErrorMessages(errors.New(ErrDocumentNotFound), "documentId"), nil)
			return
		}

		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get document", util.GenerateErrorMessages(err), nil)
		return
	}

	blob, size, err := dc.app.Storage.Open(ctx, document.FileName)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			util.ResponseFailed(ctx, http.StatusNotFound, "PDF file not found", util.GenerateErrorMessages(errors.New("stored file is missing"), "documentId"), nil)
			return
		}

		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to read stored file", util.GenerateErrorMessages(err), nil)
		return
	}
	defer blob.Close()

	ctx.DataFromReader(http.StatusOK, size, constant.PDF_CONTENT_TYPE, blob, map[string]string{
		"Content-Disposition": `inline; filename="` + document.OriginalFilename + `"`,
	})
}

func (dc DocumentController) DeleteDocument(ctx *gin.Context) {
	documentId := ctx.Params.ByName("documentId")
	if documentId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Document id is required", util.GenerateErrorMessages(errors.New(ErrDocumentIdRequired), "documentId"), nil)
		return
	}

	document, err := dc.app.Repository.Document.DeleteCascade(ctx, nil, documentId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, ErrDocumentNotFound, util.GenerateErrorMessages(errors.New(ErrDocumentNotFound), "documentId"), nil)
			return
		}

		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to delete document", util.GenerateErrorMessages(err), nil)
		return
	}

	// Best effort: a missing blob must not fail the delete, the record and
	// its dependents are already gone.
	if err := dc.app.Storage.Remove(ctx, document.FileName); err != nil {
		dc.app.Logger.Errorf("failed to delete stored file %s: %v", document.FileName, err)
	}

	util.ResponseSuccessWithMessage(ctx, "PDF document deleted successfully", nil)
}
