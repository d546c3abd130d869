package service

import (
	"edu_hub_backend/internal/model"
	"edu_hub_backend/internal/repository"
	"edu_hub_backend/internal/util"
	"errors"

	"gorm.io/gorm"
)

type SubjectService struct {
	SubjectRepo *repository.SubjectRepository
}

func NewSubjectService(subjectRepo *repository.SubjectRepository) *SubjectService {
	return &SubjectService{SubjectRepo: subjectRepo}
}

type SubjectReq struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Year        string `json:"year"`
	Semester    int    `json:"semester"`
	Color       string `json:"color"`
}

func validYear(year string) bool {
	return year == model.YearFY || year == model.YearSY || year == model.YearTY
}

func (s *SubjectService) Create(creatorID uint, req SubjectReq) (*model.Subject, error) {
	if !validYear(req.Year) {
		req.Year = model.YearFY
	}
	if req.Semester < 1 || req.Semester > 6 {
		req.Semester = 1
	}
	if req.Color == "" {
		req.Color = "#0099ff"
	}

	subject := &model.Subject{
		Name:        req.Name,
		Description: req.Description,
		Year:        req.Year,
		Semester:    req.Semester,
		Color:       req.Color,
		CreatedBy:   creatorID,
	}
	if err := s.SubjectRepo.Create(subject); err != nil {
		return nil, err
	}
	return subject, nil
}

func (s *SubjectService) Get(id uint) (*model.Subject, error) {
	subject, err := s.SubjectRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSubjectNotFound
		}
		return nil, err
	}
	return subject, nil
}

func (s *SubjectService) List(year string, semester int) ([]repository.SubjectListRow, error) {
	return s.SubjectRepo.List(year, semester)
}

func (s *SubjectService) Update(id uint, req SubjectReq) (*model.Subject, error) {
	subject, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	subject.Name = req.Name
	subject.Description = req.Description
	if validYear(req.Year) {
		subject.Year = req.Year
	}
	if req.Semester >= 1 && req.Semester <= 6 {
		subject.Semester = req.Semester
	}
	if req.Color != "" {
		subject.Color = req.Color
	}

	if err := s.SubjectRepo.Update(subject); err != nil {
		return nil, err
	}
	return subject, nil
}

// Delete 有题目、资料或成绩引用的学科不允许删除
func (s *SubjectService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}

	refs, err := s.SubjectRepo.CountReferences(id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return util.ErrSubjectReferenced
	}

	return s.SubjectRepo.Delete(id)
}
