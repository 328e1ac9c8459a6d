package model

// Signature is a reusable named image asset, independent of any document.
// ImageData holds the base64 encoded image as submitted by the client.
type Signature struct {
	BaseModel
	Name      string `gorm:"type:text;not null" json:"name"`
	ImageData string `gorm:"type:text;not null" json:"image_data"`
	FileType  string `gorm:"type:varchar(10);not null" json:"file_type"`
	UserID    string `gorm:"type:text;index" json:"user_id"`
}

func (s Signature) TableName() string {
	return "signatures"
}
