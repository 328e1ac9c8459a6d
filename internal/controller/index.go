package controller

import (
	"github.com/SeakMengs/PDFStudio/internal/util"
	"github.com/gin-gonic/gin"
)

type IndexController struct {
	*baseController
}

func (ic IndexController) Index(ctx *gin.Context) {
	util.ResponseSuccess(ctx, gin.H{
		"service": "pdfstudio",
		"status":  "ok",
		"env":     ic.app.Config.ENV,
	})
}
