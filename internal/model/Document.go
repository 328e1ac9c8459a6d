package model

import (
	"gorm.io/gorm"
)

// Document is one uploaded PDF. The blob itself lives in file storage under
// FileName; the row only carries metadata about it.
type Document struct {
	BaseModel
	FileName         string `gorm:"type:text;not null;uniqueIndex" json:"filename"`
	OriginalFilename string `gorm:"type:text;not null" json:"original_filename"`
	FileSize         int64  `gorm:"type:bigint;not null" json:"file_size"`
	FilePath         string `gorm:"type:text;not null" json:"file_path"`
	TotalPages       int    `gorm:"type:integer;not null;default:1" json:"total_pages"`
	CurrentPage      int    `gorm:"type:integer;not null;default:1" json:"current_page"`
	UserID           string `gorm:"type:text;index" json:"user_id"`
}

func (d Document) TableName() string {
	return "pdf_documents"
}

func (d *Document) BeforeCreate(tx *gorm.DB) (err error) {
	if err := d.BaseModel.BeforeCreate(tx); err != nil {
		return err
	}

	if d.TotalPages < 1 {
		d.TotalPages = 1
	}
	if d.CurrentPage < 1 {
		d.CurrentPage = 1
	}
	return
}
