package model

import (
	"time"
)

// QuizResult 一次测验的最终成绩记录，只增不改
// swagger:model QuizResult
type QuizResult struct {
	BaseModel
	UserID         uint      `gorm:"index;type:bigint unsigned;not null" json:"userId"`
	User           *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	SubjectID      uint      `gorm:"index;type:bigint unsigned;not null" json:"subjectId"`
	Subject        *Subject  `gorm:"foreignKey:SubjectID" json:"subject,omitempty"`
	Score          int       `gorm:"not null" json:"score"`
	TotalQuestions int       `gorm:"not null" json:"totalQuestions"`
	Percentage     float64   `gorm:"type:decimal(5,1);not null" json:"percentage"`
	TakenAt        time.Time `gorm:"index;not null" json:"takenAt"`
}

func (QuizResult) TableName() string {
	return "quiz_results"
}
