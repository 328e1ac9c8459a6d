package model

// Annotation is one visual mark on one page of a document. Type is an open
// string (text, rectangle, circle, arrow, highlight, signature, image, ...);
// clients are free to introduce new kinds without a schema change.
//
// PDFID is a soft reference: it is never validated against pdf_documents, so
// an annotation may outlive or predate its document. The document delete
// cascade is what keeps the table tidy.
type Annotation struct {
	BaseModel
	PDFID     string   `gorm:"column:pdf_id;type:text;not null;index" json:"pdf_id"`
	Type      string   `gorm:"type:text;not null" json:"type"`
	X         float64  `gorm:"type:double precision;not null" json:"x"`
	Y         float64  `gorm:"type:double precision;not null" json:"y"`
	Width     *float64 `gorm:"type:double precision" json:"width"`
	Height    *float64 `gorm:"type:double precision" json:"height"`
	Text      *string  `gorm:"type:text" json:"text"`
	FontSize  *int     `gorm:"type:integer" json:"font_size"`
	Color     *string  `gorm:"type:varchar(20)" json:"color"`
	ImageData *string  `gorm:"type:text" json:"image_data"`
	Page      int      `gorm:"type:integer;not null" json:"page"`
	Layer     int      `gorm:"type:integer;not null;default:0" json:"layer"`
	UserID    string   `gorm:"type:text;index" json:"user_id"`
}

func (a Annotation) TableName() string {
	return "annotations"
}
