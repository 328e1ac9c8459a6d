package model

import (
	"time"

	"gorm.io/gorm"
)

// Project binds one document to saved view state (current page, zoom).
//
// Annotations is a convenience list of annotation ids kept for the client;
// the authoritative set is every annotation whose pdf_id matches PDFID.
// PDFID is set at creation and never merged by updates.
type Project struct {
	BaseModel
	Name         string    `gorm:"type:text;not null" json:"name"`
	PDFID        string    `gorm:"column:pdf_id;type:text;not null;index" json:"pdf_id"`
	Annotations  []string  `gorm:"serializer:json" json:"annotations"`
	CurrentPage  int       `gorm:"type:integer;not null;default:1" json:"current_page"`
	ZoomLevel    float64   `gorm:"type:double precision;not null;default:1" json:"zoom_level"`
	LastModified time.Time `gorm:"type:timestamptz;not null" json:"last_modified"`
	UserID       string    `gorm:"type:text;index" json:"user_id"`
}

func (p Project) TableName() string {
	return "projects"
}

func (p *Project) BeforeCreate(tx *gorm.DB) (err error) {
	if err := p.BaseModel.BeforeCreate(tx); err != nil {
		return err
	}

	if p.Annotations == nil {
		p.Annotations = []string{}
	}
	if p.CurrentPage < 1 {
		p.CurrentPage = 1
	}
	if p.ZoomLevel <= 0 {
		p.ZoomLevel = 1.0
	}
	if p.LastModified.IsZero() {
		p.LastModified = time.Now().UTC()
	}
	return
}
