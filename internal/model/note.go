package model

// Note 教师上传的课程资料文件
// swagger:model Note
type Note struct {
	BaseModel
	SubjectID   uint     `gorm:"index;type:bigint unsigned;not null" json:"subjectId"`
	Subject     *Subject `gorm:"foreignKey:SubjectID" json:"subject,omitempty"`
	Title       string   `gorm:"size:255;not null" json:"title"`
	Description string   `gorm:"type:text" json:"description"`
	FileName    string   `gorm:"size:255;not null" json:"fileName"`
	StoredName  string   `gorm:"size:255;not null" json:"-"`
	FileSize    int64    `gorm:"default:0" json:"fileSize"`
	Downloads   int      `gorm:"default:0" json:"downloads"`
	UploadedBy  uint     `gorm:"index;type:bigint unsigned" json:"uploadedBy"`
	Uploader    *User    `gorm:"foreignKey:UploadedBy" json:"uploader,omitempty"`
}

func (Note) TableName() string {
	return "notes"
}
