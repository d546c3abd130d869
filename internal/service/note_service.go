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

// NoteService 课程资料：教师上传，所有登录用户浏览/搜索/下载
type NoteService struct {
	NoteRepo    *repository.NoteRepository
	SubjectRepo *repository.SubjectRepository
	Storage     *StorageService
}

func NewNoteService(noteRepo *repository.NoteRepository, subjectRepo *repository.SubjectRepository, storage *StorageService) *NoteService {
	return &NoteService{NoteRepo: noteRepo, SubjectRepo: subjectRepo, Storage: storage}
}

// Upload 保存文件并登记资料记录。存储文件名用 UUID，避免用户文件名冲突和路径注入。
func (n *NoteService) Upload(ctx context.Context, uploaderID, subjectID uint, title, description, fileName string, size int64, reader io.Reader) (*model.Note, error) {
	if _, err := n.SubjectRepo.FindByID(subjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSubjectNotFound
		}
		return nil, err
	}

	if !util.HasAllowedExtension(fileName, util.AllowedNoteExtensions) {
		return nil, errors.New("file type not allowed")
	}

	// 扩展名之外再嗅探文件头，防止改名伪装的内容混进资料库
	mimeType, err := util.ValidateMimeType(reader, util.AllowedNoteMimeTypes)
	if err != nil {
		return nil, fmt.Errorf("invalid file content: %w", err)
	}
	if seeker, ok := reader.(io.Seeker); ok {
		if _, err := seeker.Seek(0, io.SeekStart); err != nil {
			return nil, err
		}
	}

	storedName := uuid.New().String() + filepath.Ext(fileName)
	if _, err := n.Storage.Upload(ctx, "notes/"+storedName, reader, size, mimeType); err != nil {
		return nil, err
	}

	note := &model.Note{
		SubjectID:   subjectID,
		Title:       title,
		Description: description,
		FileName:    fileName,
		StoredName:  "notes/" + storedName,
		FileSize:    size,
		UploadedBy:  uploaderID,
	}
	if err := n.NoteRepo.Create(note); err != nil {
		// 入库失败时清掉已上传的文件
		_ = n.Storage.Delete(ctx, note.StoredName)
		return nil, err
	}
	return note, nil
}

func (n *NoteService) Get(id uint) (*model.Note, error) {
	note, err := n.NoteRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNoteNotFound
		}
		return nil, err
	}
	return note, nil
}

func (n *NoteService) List(subjectID uint, search string, page, limit int) ([]model.Note, int64, error) {
	return n.NoteRepo.List(subjectID, search, page, limit)
}

func (n *NoteService) ListByUploader(uploaderID uint) ([]model.Note, error) {
	return n.NoteRepo.ListByUploader(uploaderID)
}

// OpenForDownload 打开文件流并累加下载计数
func (n *NoteService) OpenForDownload(ctx context.Context, id uint) (*model.Note, io.ReadCloser, error) {
	note, err := n.Get(id)
	if err != nil {
		return nil, nil, err
	}

	reader, err := n.Storage.Open(ctx, note.StoredName)
	if err != nil {
		return nil, nil, err
	}

	_ = n.NoteRepo.IncrementDownloads(note.ID)

	return note, reader, nil
}

// Delete 上传者本人或管理员可删除
func (n *NoteService) Delete(ctx context.Context, claims *util.Claims, id uint) error {
	note, err := n.Get(id)
	if err != nil {
		return err
	}

	if claims.Role != model.Admin && claims.UserID != note.UploadedBy {
		return util.ErrPermissionDenied
	}

	if err := n.NoteRepo.Delete(note.ID); err != nil {
		return err
	}
	_ = n.Storage.Delete(ctx, note.StoredName)
	return nil
}
