package route

import (
	"github.com/SeakMengs/PDFStudio/internal/controller"
	"github.com/gin-gonic/gin"
)

func Pdf_Documents(r *gin.RouterGroup, dc *controller.DocumentController) {
	pdf := r.Group("/pdf")
	{
		pdf.POST("/upload", dc.UploadPdf)
		pdf.GET("/document/:documentId", dc.GetDocumentById)
		pdf.GET("/file/:documentId", dc.ServePdfFile)
		pdf.DELETE("/document/:documentId", dc.DeleteDocument)
	}
}
