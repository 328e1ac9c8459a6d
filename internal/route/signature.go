package route

import (
	"github.com/SeakMengs/PDFStudio/internal/controller"
	"github.com/gin-gonic/gin"
)

func Pdf_Signatures(r *gin.RouterGroup, sc *controller.SignatureController) {
	pdf := r.Group("/pdf/signatures")
	{
		pdf.POST("", sc.CreateSignature)
		pdf.GET("", sc.GetSignatures)
		pdf.DELETE("/:signatureId", sc.DeleteSignature)
	}
}
