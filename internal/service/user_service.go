package service

import (
	"context"
	"edu_hub_backend/internal/model"
	"edu_hub_backend/internal/repository"
	"edu_hub_backend/internal/util"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserService 用户资料与管理员的用户管理（含教师审批）
type UserService struct {
	UserRepo *repository.UserRepository
	Storage  *StorageService
}

func NewUserService(userRepo *repository.UserRepository, storage *StorageService) *UserService {
	return &UserService{UserRepo: userRepo, Storage: storage}
}

func (s *UserService) Get(id uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) List(role model.UserRole, page, limit int) ([]model.User, int64, error) {
	return s.UserRepo.List(role, page, limit)
}

type ProfileReq struct {
	Name   string `json:"name"`
	Mobile string `json:"mobile"`
	Year   string `json:"year"`
}

func (s *UserService) UpdateProfile(id uint, req ProfileReq) (*model.User, error) {
	user, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	user.Mobile = req.Mobile
	if validYear(req.Year) {
		user.Year = req.Year
	}

	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// UploadAvatar 头像上传，文件名用 UUID
func (s *UserService) UploadAvatar(ctx context.Context, id uint, fileName string, size int64, reader io.Reader) (*model.User, error) {
	user, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	// 以文件头为准判断图片类型，不信任客户端声明的 Content-Type
	mimeType, err := util.ValidateMimeType(reader, []string{util.MimeImage})
	if err != nil {
		return nil, fmt.Errorf("invalid image content: %w", err)
	}
	if seeker, ok := reader.(io.Seeker); ok {
		if _, err := seeker.Seek(0, io.SeekStart); err != nil {
			return nil, err
		}
	}

	storedName := "avatars/" + uuid.New().String() + filepath.Ext(fileName)
	url, err := s.Storage.Upload(ctx, storedName, io.LimitReader(reader, size), size, mimeType)
	if err != nil {
		return nil, err
	}

	user.Avatar = url
	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// PendingTeachers 等待审批的教师注册申请
func (s *UserService) PendingTeachers() ([]model.User, error) {
	return s.UserRepo.FindPendingTeachers()
}

// ApproveTeacher 审批教师注册；approve=false 时标记为 rejected
func (s *UserService) ApproveTeacher(id uint, approve bool) error {
	user, err := s.Get(id)
	if err != nil {
		return err
	}
	if user.Role != model.Teacher || user.Status != model.StatusPending {
		return errors.New("user is not a pending teacher")
	}

	status := model.StatusApproved
	if !approve {
		status = model.StatusRejected
	}
	return s.UserRepo.UpdateStatus(id, status)
}

func (s *UserService) ChangeRole(id uint, role model.UserRole) error {
	if role != model.Student && role != model.Teacher && role != model.Admin {
		return errors.New("invalid role")
	}
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.UserRepo.UpdateRole(id, role)
}

func (s *UserService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.UserRepo.Delete(id)
}
