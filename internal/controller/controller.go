package controller

import (
	appcontext "github.com/SeakMengs/PDFStudio/internal/app_context"
)

type baseController struct {
	app *appcontext.Application
}

type Controller struct {
	Index      *IndexController
	Document   *DocumentController
	Annotation *AnnotationController
	Signature  *SignatureController
	Project    *ProjectController
}

func newBaseController(app *appcontext.Application) *baseController {
	return &baseController{app: app}
}

func NewController(app *appcontext.Application) *Controller {
	bc := newBaseController(app)

	return &Controller{
		Index:      &IndexController{baseController: bc},
		Document:   &DocumentController{baseController: bc},
		Annotation: &AnnotationController{baseController: bc},
		Signature:  &SignatureController{baseController: bc},
		Project:    &ProjectController{baseController: bc},
	}
}
