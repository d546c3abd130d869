package repository

import (
	"edu_hub_backend/internal/model"

	"gorm.io/gorm"
)

type SubjectRepository struct {
	DB *gorm.DB
}

func NewSubjectRepository(db *gorm.DB) *SubjectRepository {
	return &SubjectRepository{DB: db}
}

func (r *SubjectRepository) Create(subject *model.Subject) error {
	return r.DB.Create(subject).Error
}

func (r *SubjectRepository) FindByID(id uint) (*model.Subject, error) {
	var s model.Subject
	err := r.DB.First(&s, id).Error
	return &s, err
}

// SubjectListRow 学科列表行，附带题目数与资料数
type SubjectListRow struct {
	model.Subject
	QuestionCount int `json:"questionCount"`
	NoteCount     int `json:"noteCount"`
}

func (r *SubjectRepository) List(year string, semester int) ([]SubjectListRow, error) {
	var rows []SubjectListRow
	query := r.DB.Table("subjects s").
		Select("s.*, " +
			"(SELECT COUNT(*) FROM questions q WHERE q.subject_id = s.id AND q.deleted_at IS NULL) as question_count, " +
			"(SELECT COUNT(*) FROM notes n WHERE n.subject_id = s.id AND n.deleted_at IS NULL) as note_count").
		Where("s.deleted_at IS NULL")

	if year != "" {
		query = query.Where("s.year = ?", year)
	}
	if semester > 0 {
		query = query.Where("s.semester = ?", semester)
	}

	err := query.Order("s.year asc, s.semester asc, s.name asc").Scan(&rows).Error
	return rows, err
}

func (r *SubjectRepository) Update(subject *model.Subject) error {
	return r.DB.Save(subject).Error
}

func (r *SubjectRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Subject{}, id).Error
}

// CountReferences 统计引用该学科的题目、资料和成绩记录数，用于限制删除
func (r *SubjectRepository) CountReferences(id uint) (int64, error) {
	var questions, notes, results int64

	if err := r.DB.Model(&model.Question{}).Where("subject_id = ?", id).Count(&questions).Error; err != nil {
		return 0, err
	}
	if err := r.DB.Model(&model.Note{}).Where("subject_id = ?", id).Count(&notes).Error; err != nil {
		return 0, err
	}
	if err := r.DB.Model(&model.QuizResult{}).Where("subject_id = ?", id).Count(&results).Error; err != nil {
		return 0, err
	}

	return questions + notes + results, nil
}
