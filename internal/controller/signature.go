package controller

import (
	"errors"
	"net/http"

	"github.com/SeakMengs/PDFStudio/internal/model"
	"github.com/SeakMengs/PDFStudio/internal/util"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SignatureController struct {
	*baseController
}

const (
	ErrSignatureIdRequired = "signature id is required"
	ErrSignatureNotFound   = "Signature not found"
)

func (sc SignatureController) CreateSignature(ctx *gin.Context) {
	type Request struct {
		Name      string `form:"name" binding:"required,strNotEmpty"`
		ImageData string `form:"image_data" binding:"required,strNotEmpty"`
		FileType  string `form:"file_type" binding:"required,strNotEmpty"`
		UserID    string `form:"user_id"`
	}
	var body Request

	if err := ctx.ShouldBind(&body); err != nil {
		sc.app.Logger.Errorf("Failed to bind request: %v", err)
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid request", util.GenerateErrorMessages(err), nil)
		return
	}

	signature := model.Signature{
		Name:      body.Name,
		ImageData: body.ImageData,
		FileType:  body.FileType,
		UserID:    body.UserID,
	}

	if _, err := sc.app.Repository.Signature.Create(ctx, nil, &signature); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to create signature", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"signature": signature,
	})
}

func (sc SignatureController) GetSignatures(ctx *gin.Context) {
	signatures, err := sc.app.Repository.Signature.GetList(ctx, nil, ctx.Query("user_id"))
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to get signatures", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"signatures": signatures,
		"count":      len(signatures),
	})
}

func (sc SignatureController) DeleteSignature(ctx *gin.Context) {
	signatureId := ctx.Params.ByName("signatureId")
	if signatureId == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Signature id is required", util.GenerateErrorMessages(errors.New(ErrSignatureIdRequired), "signatureId"), nil)
		return
	}

	if err := sc.app.Repository.Signature.Delete(ctx, nil, signatureId); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, ErrSignatureNotFound, util.GenerateErrorMessages(errors.New(ErrSignatureNotFound), "signatureId"), nil)
			return
		}

		util.ResponseFailed(ctx, http.StatusInternalServerError, "Failed to delete signature", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccessWithMessage(ctx, "Signature deleted successfully", nil)
}
