package route

import (
	"github.com/SeakMengs/PDFStudio/internal/controller"
	"github.com/gin-gonic/gin"
)

func Pdf_Annotations(r *gin.RouterGroup, ac *controller.AnnotationController) {
	pdf := r.Group("/pdf/annotations")
	{
		pdf.POST("", ac.CreateAnnotation)
		// GET takes a pdf id, PUT/DELETE take an annotation id.
		pdf.GET("/:pdfId", ac.GetAnnotationsByPdf)
		pdf.PUT("/:annotationId", ac.UpdateAnnotation)
		pdf.DELETE("/:annotationId", ac.DeleteAnnotation)
	}
}
