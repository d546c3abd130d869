package model

import (
	"time"
)

type UserRole string

const (
	Student UserRole = "student"
	Teacher UserRole = "teacher"
	Admin   UserRole = "admin"
)

type UserStatus string

// 教师注册后默认 pending，需管理员审批；学生注册即 approved
const (
	StatusPending  UserStatus = "pending"
	StatusApproved UserStatus = "approved"
	StatusRejected UserStatus = "rejected"
)

// swagger:model User
type User struct {
	BaseModel
	Name      string     `gorm:"size:100;not null" json:"name"`
	Email     string     `gorm:"size:100;unique;not null" json:"email"`
	Password  string     `gorm:"size:100;not null" json:"-"`
	Role      UserRole   `gorm:"type:enum('student','teacher','admin');default:'student'" json:"role"`
	Status    UserStatus `gorm:"type:enum('pending','approved','rejected');default:'approved'" json:"status"`
	Year      string     `gorm:"type:enum('FY','SY','TY');default:'FY'" json:"year"`
	Mobile    string     `gorm:"size:20" json:"mobile"`
	Avatar    string     `gorm:"size:255" json:"avatar"`
	LastLogin time.Time  `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastLogin"`
	LastSeen  time.Time  `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastSeen"`
}

func (User) TableName() string {
	return "users"
}
