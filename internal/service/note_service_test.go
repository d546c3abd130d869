package service

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"edu_hub_backend/internal/config"
	"edu_hub_backend/internal/model"
	"edu_hub_backend/internal/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newNoteService(t *testing.T) (*NoteService, *gorm.DB, string) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	// enum 等 MySQL 专属列类型在 sqlite 上不可用，手写建表
	ddl := []string{
		`CREATE TABLE subjects (
			id integer PRIMARY KEY AUTOINCREMENT,
			created_at datetime, updated_at datetime, deleted_at datetime,
			name text, description text, year text,
			semester integer, color text, created_by integer
		)`,
		`CREATE TABLE notes (
			id integer PRIMARY KEY AUTOINCREMENT,
			created_at datetime, updated_at datetime, deleted_at datetime,
			subject_id integer, title text, description text,
			file_name text, stored_name text,
			file_size integer, downloads integer, uploaded_by integer
		)`,
	}
	for _, stmt := range ddl {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("create table: %v", err)
		}
	}

	dir := t.TempDir()
	storage := &StorageService{Provider: &LocalStorageProvider{Config: &config.StorageConfig{
		Type:      "local",
		LocalPath: dir,
	}}}
	svc := NewNoteService(repository.NewNoteRepository(db), repository.NewSubjectRepository(db), storage)
	return svc, db, dir
}

func seedNoteSubject(t *testing.T, db *gorm.DB) *model.Subject {
	t.Helper()
	subject := &model.Subject{Name: "Mathematics", Year: model.YearFY, Semester: 1, Color: "#0099ff"}
	if err := db.Create(subject).Error; err != nil {
		t.Fatalf("seed subject: %v", err)
	}
	return subject
}

func TestNoteUpload(t *testing.T) {
	t.Run("合法 PDF 完整落盘", func(t *testing.T) {
		svc, db, dir := newNoteService(t)
		subject := seedNoteSubject(t, db)

		content := []byte("%PDF-1.7\nfake pdf body for upload test")
		note, err := svc.Upload(context.Background(), 1, subject.ID, "Calculus notes", "",
			"report.pdf", int64(len(content)), bytes.NewReader(content))
		if err != nil {
			t.Fatalf("Upload: %v", err)
		}
		if note.FileName != "report.pdf" || note.FileSize != int64(len(content)) {
			t.Errorf("note = %+v", note)
		}

		// 嗅探读掉的文件头必须被回退，落盘内容要和原文件一字不差
		stored, err := os.ReadFile(filepath.Join(dir, note.StoredName))
		if err != nil {
			t.Fatalf("read stored file: %v", err)
		}
		if !bytes.Equal(stored, content) {
			t.Errorf("stored %d bytes, want %d identical bytes", len(stored), len(content))
		}
	})

	t.Run("伪装成 PDF 的 HTML 被拒", func(t *testing.T) {
		svc, db, dir := newNoteService(t)
		subject := seedNoteSubject(t, db)

		body := "<html><script>alert(1)</script></html>"
		_, err := svc.Upload(context.Background(), 1, subject.ID, "Trojan", "",
			"trojan.pdf", int64(len(body)), strings.NewReader(body))
		if err == nil {
			t.Fatal("expected upload to be rejected")
		}

		var count int64
		if err := db.Model(&model.Note{}).Count(&count).Error; err != nil {
			t.Fatalf("count notes: %v", err)
		}
		if count != 0 {
			t.Errorf("notes in db = %d, want 0", count)
		}
		if entries, _ := os.ReadDir(filepath.Join(dir, "notes")); len(entries) != 0 {
			t.Errorf("files on disk = %d, want 0", len(entries))
		}
	})

	t.Run("扩展名不在白名单被拒", func(t *testing.T) {
		svc, db, _ := newNoteService(t)
		subject := seedNoteSubject(t, db)

		_, err := svc.Upload(context.Background(), 1, subject.ID, "Script", "",
			"run.sh", 4, strings.NewReader("#!/b"))
		if err == nil {
			t.Fatal("expected upload to be rejected")
		}
	})
}
