package route

import (
	"github.com/SeakMengs/PDFStudio/internal/controller"
	"github.com/gin-gonic/gin"
)

func Pdf_Projects(r *gin.RouterGroup, pc *controller.ProjectController) {
	pdf := r.Group("/pdf/projects")
	{
		pdf.POST("", pc.CreateProject)
		pdf.GET("", pc.GetProjects)
		pdf.GET("/:projectId", pc.GetProjectById)
		pdf.PUT("/:projectId", pc.UpdateProject)
		pdf.DELETE("/:projectId", pc.DeleteProject)
	}
}
