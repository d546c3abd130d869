package database

import (
	"edu_hub_backend/internal/config"
	"edu_hub_backend/internal/model"
	"fmt"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	return db, nil
}

// Migrate 执行数据库迁移并插入初始数据
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.User{},
		&model.Subject{},
		&model.Question{},
		&model.QuizResult{},
		&model.Note{},
	)
	if err != nil {
		return err
	}

	log.Println("Database migration completed")

	// 默认学科（空库时插入，便于首次部署后直接可用）
	var count int64
	db.Model(&model.Subject{}).Count(&count)
	if count == 0 {
		defaultSubjects := []model.Subject{
			{Name: "Mathematics", Year: model.YearFY, Semester: 1, Color: "#4f8ef7", Description: "Algebra, calculus and linear mathematics"},
			{Name: "Physics", Year: model.YearFY, Semester: 2, Color: "#f75f4f", Description: "Mechanics, waves and thermodynamics"},
			{Name: "Computer Science", Year: model.YearSY, Semester: 3, Color: "#34c98e", Description: "Programming fundamentals and data structures"},
		}
		for _, s := range defaultSubjects {
			db.Create(&s)
		}
	}

	return nil
}
