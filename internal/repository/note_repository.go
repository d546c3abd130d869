package repository

import (
	"edu_hub_backend/internal/model"

	"gorm.io/gorm"
)

type NoteRepository struct {
	DB *gorm.DB
}

func NewNoteRepository(db *gorm.DB) *NoteRepository {
	return &NoteRepository{DB: db}
}

func (r *NoteRepository) Create(note *model.Note) error {
	return r.DB.Create(note).Error
}

func (r *NoteRepository) FindByID(id uint) (*model.Note, error) {
	var n model.Note
	err := r.DB.Preload("Subject").First(&n, id).Error
	return &n, err
}

// List 按学科过滤并支持标题/描述模糊搜索
func (r *NoteRepository) List(subjectID uint, search string, page, limit int) ([]model.Note, int64, error) {
	var notes []model.Note
	var total int64

	query := r.DB.Model(&model.Note{})
	if subjectID > 0 {
		query = query.Where("subject_id = ?", subjectID)
	}
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", like, like)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.Preload("Subject").Preload("Uploader").
		Order("created_at desc").Offset(offset).Limit(limit).Find(&notes).Error
	return notes, total, err
}

func (r *NoteRepository) ListByUploader(uploaderID uint) ([]model.Note, error) {
	var notes []model.Note
	err := r.DB.Preload("Subject").
		Where("uploaded_by = ?", uploaderID).
		Order("created_at desc").Find(&notes).Error
	return notes, err
}

func (r *NoteRepository) IncrementDownloads(id uint) error {
	return r.DB.Model(&model.Note{}).Where("id = ?", id).
		UpdateColumn("downloads", gorm.Expr("downloads + 1")).Error
}

func (r *NoteRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Note{}, id).Error
}
