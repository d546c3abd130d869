package model

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Question 单选题，四个选项 A-D，correct_answer 为唯一评分依据
// swagger:model Question
type Question struct {
	BaseModel
	SubjectID     uint       `gorm:"index;type:bigint unsigned;not null" json:"subjectId"`
	Subject       *Subject   `gorm:"foreignKey:SubjectID" json:"subject,omitempty"`
	QuestionText  string     `gorm:"type:text;not null" json:"questionText"`
	OptionA       string     `gorm:"size:500;not null" json:"optionA"`
	OptionB       string     `gorm:"size:500;not null" json:"optionB"`
	OptionC       string     `gorm:"size:500;not null" json:"optionC"`
	OptionD       string     `gorm:"size:500;not null" json:"optionD"`
	CorrectAnswer string     `gorm:"type:enum('A','B','C','D');not null" json:"correctAnswer"`
	Difficulty    Difficulty `gorm:"type:enum('easy','medium','hard');default:'medium'" json:"difficulty"`
	CreatedBy     uint       `gorm:"index;type:bigint unsigned" json:"createdBy"`
}

func (Question) TableName() string {
	return "questions"
}

// Option 根据标签取对应选项文本，标签非法时返回空串
func (q *Question) Option(label string) string {
	switch label {
	case "A":
		return q.OptionA
	case "B":
		return q.OptionB
	case "C":
		return q.OptionC
	case "D":
		return q.OptionD
	}
	return ""
}
