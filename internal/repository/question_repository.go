package repository

import (
	"edu_hub_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) Create(question *model.Question) error {
	return r.DB.Create(question).Error
}

func (r *QuestionRepository) CreateBatch(questions []model.Question) error {
	if len(questions) == 0 {
		return nil
	}
	return r.DB.Create(&questions).Error
}

func (r *QuestionRepository) FindByID(id uint) (*model.Question, error) {
	var q model.Question
	err := r.DB.First(&q, id).Error
	return &q, err
}

// FindBySubject 返回学科下全部题目（管理/出题视图）
func (r *QuestionRepository) FindBySubject(subjectID uint) ([]model.Question, error) {
	var qs []model.Question
	err := r.DB.Where("subject_id = ?", subjectID).
		Order("created_at desc").Find(&qs).Error
	return qs, err
}

// FindByIDsForSubject 按 id 查询学科下的题目；不属于该学科或不存在的 id 被忽略
func (r *QuestionRepository) FindByIDsForSubject(subjectID uint, ids []uint) ([]model.Question, error) {
	var qs []model.Question
	if len(ids) == 0 {
		return qs, nil
	}
	err := r.DB.Where("subject_id = ? AND id IN ?", subjectID, ids).Find(&qs).Error
	return qs, err
}

func (r *QuestionRepository) List(subjectID, creatorID uint, difficulty model.Difficulty, page, limit int) ([]model.Question, int64, error) {
	var qs []model.Question
	var total int64

	query := r.DB.Model(&model.Question{})
	if subjectID > 0 {
		query = query.Where("subject_id = ?", subjectID)
	}
	if creatorID > 0 {
		query = query.Where("created_by = ?", creatorID)
	}
	if difficulty != "" {
		query = query.Where("difficulty = ?", difficulty)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.Preload("Subject").Order("created_at desc").Offset(offset).Limit(limit).Find(&qs).Error
	return qs, total, err
}

func (r *QuestionRepository) CountBySubject(subjectID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Question{}).Where("subject_id = ?", subjectID).Count(&count).Error
	return count, err
}

func (r *QuestionRepository) Update(question *model.Question) error {
	return r.DB.Save(question).Error
}

func (r *QuestionRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Question{}, id).Error
}
