package repository

import (
	"edu_hub_backend/internal/model"

	"gorm.io/gorm"
)

type QuizResultRepository struct {
	DB *gorm.DB
}

func NewQuizResultRepository(db *gorm.DB) *QuizResultRepository {
	return &QuizResultRepository{DB: db}
}

// Create 追加一条成绩记录。成绩只增不改，每次提交都是一条新的历史记录。
func (r *QuizResultRepository) Create(result *model.QuizResult) error {
	return r.DB.Create(result).Error
}

// SummaryByStudent 学生总览：测验次数、平均百分比、考过的学科数。无记录时返回全零。
func (r *QuizResultRepository) SummaryByStudent(studentID uint) (*model.StudentSummary, error) {
	var row struct {
		TotalQuizzes      int
		AveragePercentage float64
		SubjectsAttempted int
	}

	err := r.DB.Model(&model.QuizResult{}).
		Select("COUNT(*) as total_quizzes, COALESCE(AVG(percentage), 0) as average_percentage, COUNT(DISTINCT subject_id) as subjects_attempted").
		Where("user_id = ?", studentID).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}

	return &model.StudentSummary{
		TotalQuizzes:      row.TotalQuizzes,
		AveragePercentage: row.AveragePercentage,
		SubjectsAttempted: row.SubjectsAttempted,
	}, nil
}

// HistoryByStudent 最近成绩，按考试时间倒序，最多 limit 条
func (r *QuizResultRepository) HistoryByStudent(studentID uint, limit int) ([]model.QuizResult, error) {
	var results []model.QuizResult
	err := r.DB.Preload("Subject").
		Where("user_id = ?", studentID).
		Order("taken_at desc").
		Limit(limit).
		Find(&results).Error
	return results, err
}

// SubjectBreakdown 学生按学科的平均成绩，按平均百分比降序
func (r *QuizResultRepository) SubjectBreakdown(studentID uint) ([]model.SubjectPerformance, error) {
	var rows []model.SubjectPerformance
	err := r.DB.Raw(`
		SELECT s.id AS subject_id, s.name AS subject_name, s.color,
		       AVG(r.percentage) AS average_percentage,
		       COUNT(r.id) AS attempt_count
		FROM quiz_results r
		INNER JOIN subjects s ON s.id = r.subject_id
		WHERE r.user_id = ? AND r.deleted_at IS NULL
		GROUP BY s.id, s.name, s.color
		ORDER BY average_percentage DESC
	`, studentID).Scan(&rows).Error
	return rows, err
}

// CohortSummary 班级分析：每个 student 角色的用户一行，LEFT JOIN 保证零记录学生也出现。
// semester/year 过滤只限制参与统计的成绩（按其学科），不过滤学生本身。
func (r *QuizResultRepository) CohortSummary(semester int, year string) ([]model.CohortRow, error) {
	filtered := `
		SELECT r.* FROM quiz_results r
		INNER JOIN subjects s ON s.id = r.subject_id
		WHERE r.deleted_at IS NULL`
	args := []interface{}{}
	if semester > 0 {
		filtered += " AND s.semester = ?"
		args = append(args, semester)
	}
	if year != "" {
		filtered += " AND s.year = ?"
		args = append(args, year)
	}

	var rows []model.CohortRow
	err := r.DB.Raw(`
		SELECT u.id AS student_id, u.name, u.email, u.year AS student_year,
		       COUNT(r.id) AS total_quizzes,
		       COALESCE(AVG(r.percentage), 0) AS average_percentage,
		       COALESCE(MAX(r.percentage), 0) AS best_percentage,
		       COUNT(DISTINCT r.subject_id) AS subjects_attempted,
		       MAX(r.taken_at) AS last_active
		FROM users u
		LEFT JOIN (`+filtered+`) r ON r.user_id = u.id
		WHERE u.role = 'student' AND u.deleted_at IS NULL
		GROUP BY u.id, u.name, u.email, u.year
		ORDER BY average_percentage DESC
	`, args...).Scan(&rows).Error
	return rows, err
}
