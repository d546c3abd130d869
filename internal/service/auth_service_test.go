package service

import (
	"errors"
	"testing"
	"time"

	"edu_hub_backend/internal/config"
	"edu_hub_backend/internal/model"
	"edu_hub_backend/internal/repository"
	"edu_hub_backend/internal/util"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newAuthService(t *testing.T) (*AuthService, *gorm.DB) {
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

	err = db.Exec(`CREATE TABLE users (
		id integer PRIMARY KEY AUTOINCREMENT,
		created_at datetime, updated_at datetime, deleted_at datetime,
		name text, email text, password text,
		role text, status text, year text,
		mobile text, avatar text,
		last_login datetime, last_seen datetime
	)`).Error
	if err != nil {
		t.Fatalf("create table: %v", err)
	}

	cfg := &config.Config{}
	cfg.JWT.Secret = "unit-test-secret-0123456789abcdef"
	cfg.JWT.ExpireTime = time.Hour
	return NewAuthService(repository.NewUserRepository(db), cfg), db
}

func TestRegister(t *testing.T) {
	t.Run("学生注册即通过", func(t *testing.T) {
		svc, _ := newAuthService(t)
		user := &model.User{Name: "alice", Email: "alice@example.com", Password: "secret123", Year: model.YearFY}
		if err := svc.Register(user); err != nil {
			t.Fatalf("Register: %v", err)
		}
		if user.Role != model.Student || user.Status != model.StatusApproved {
			t.Errorf("role/status = %s/%s, want student/approved", user.Role, user.Status)
		}
		if user.Password == "secret123" {
			t.Error("password stored in plaintext")
		}
	})

	t.Run("教师注册待审批", func(t *testing.T) {
		svc, _ := newAuthService(t)
		user := &model.User{Name: "carol", Email: "carol@example.com", Password: "secret123", Role: model.Teacher, Year: model.YearFY}
		if err := svc.Register(user); err != nil {
			t.Fatalf("Register: %v", err)
		}
		if user.Status != model.StatusPending {
			t.Errorf("status = %s, want pending", user.Status)
		}
	})

	t.Run("重复邮箱返回哨兵错误", func(t *testing.T) {
		svc, _ := newAuthService(t)
		first := &model.User{Name: "alice", Email: "alice@example.com", Password: "secret123", Year: model.YearFY}
		if err := svc.Register(first); err != nil {
			t.Fatalf("Register: %v", err)
		}

		dup := &model.User{Name: "mallory", Email: "alice@example.com", Password: "secret456", Year: model.YearFY}
		err := svc.Register(dup)
		if !errors.Is(err, util.ErrEmailRegistered) {
			t.Fatalf("err = %v, want ErrEmailRegistered", err)
		}
		if err.Error() != "email already registered" {
			t.Errorf("message = %q, want plain english", err.Error())
		}
	})
}

func TestLogin(t *testing.T) {
	svc, _ := newAuthService(t)
	user := &model.User{Name: "alice", Email: "alice@example.com", Password: "secret123", Year: model.YearFY}
	if err := svc.Register(user); err != nil {
		t.Fatalf("Register: %v", err)
	}

	t.Run("密码正确签发令牌", func(t *testing.T) {
		token, logged, err := svc.Login("alice@example.com", "secret123")
		if err != nil {
			t.Fatalf("Login: %v", err)
		}
		if token == "" || logged.ID != user.ID {
			t.Errorf("token=%q user=%v", token, logged)
		}
	})

	t.Run("密码错误与账号不存在同一个报错", func(t *testing.T) {
		_, _, wrongPass := svc.Login("alice@example.com", "nope")
		_, _, noUser := svc.Login("ghost@example.com", "nope")
		if wrongPass == nil || noUser == nil {
			t.Fatal("expected login failures")
		}
		if wrongPass.Error() != noUser.Error() {
			t.Errorf("messages differ: %q vs %q", wrongPass.Error(), noUser.Error())
		}
	})

	t.Run("待审批教师不能登录", func(t *testing.T) {
		teacher := &model.User{Name: "carol", Email: "carol@example.com", Password: "secret123", Role: model.Teacher, Year: model.YearFY}
		if err := svc.Register(teacher); err != nil {
			t.Fatalf("Register: %v", err)
		}
		_, _, err := svc.Login("carol@example.com", "secret123")
		if !errors.Is(err, util.ErrAccountPending) {
			t.Errorf("err = %v, want ErrAccountPending", err)
		}
	})
}
