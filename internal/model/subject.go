package model

// 学年固定三档：FY/SY/TY（第一、二、三学年），学期 1-6
const (
	YearFY = "FY"
	YearSY = "SY"
	YearTY = "TY"
)

// swagger:model Subject
type Subject struct {
	BaseModel
	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Year        string `gorm:"type:enum('FY','SY','TY');not null;default:'FY'" json:"year"`
	Semester    int    `gorm:"not null;default:1" json:"semester"`
	Color       string `gorm:"size:20;default:'#0099ff'" json:"color"`
	CreatedBy   uint   `gorm:"index;type:bigint unsigned" json:"createdBy"`
}

func (Subject) TableName() string {
	return "subjects"
}
