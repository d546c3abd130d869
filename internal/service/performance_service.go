package service

import (
	"edu_hub_backend/internal/config"
	"edu_hub_backend/internal/model"
	"edu_hub_backend/internal/repository"
)

// PerformanceService 成绩聚合：个人汇总、历史、分学科统计和班级分析。
// 全部按需查询，不做缓存。
type PerformanceService struct {
	ResultRepo *repository.QuizResultRepository
	Cfg        *config.Config
}

func NewPerformanceService(resultRepo *repository.QuizResultRepository, cfg *config.Config) *PerformanceService {
	return &PerformanceService{ResultRepo: resultRepo, Cfg: cfg}
}

// StudentSummary 学生个人汇总；没有任何成绩时返回全零而不是错误
func (s *PerformanceService) StudentSummary(studentID uint) (*model.StudentSummary, error) {
	summary, err := s.ResultRepo.SummaryByStudent(studentID)
	if err != nil {
		return nil, err
	}
	summary.AveragePercentage = Round1(summary.AveragePercentage)
	return summary, nil
}

// StudentHistory 最近成绩快照，按 taken_at 倒序，limit<=0 时用配置默认值
func (s *PerformanceService) StudentHistory(studentID uint, limit int) ([]model.QuizResult, error) {
	if limit <= 0 {
		limit = s.Cfg.Quiz.HistoryLimit
	}
	return s.ResultRepo.HistoryByStudent(studentID, limit)
}

// SubjectBreakdown 学生分学科平均成绩，按平均百分比降序
func (s *PerformanceService) SubjectBreakdown(studentID uint) ([]model.SubjectPerformance, error) {
	rows, err := s.ResultRepo.SubjectBreakdown(studentID)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].AveragePercentage = Round1(rows[i].AveragePercentage)
	}
	return rows, nil
}

// CohortSummary 班级分析。semester/year 为零值时不过滤。
// 零记录的学生也会出现在结果中（统计全为零）。
func (s *PerformanceService) CohortSummary(semester int, year string) ([]model.CohortRow, error) {
	rows, err := s.ResultRepo.CohortSummary(semester, year)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].AveragePercentage = Round1(rows[i].AveragePercentage)
	}
	return rows, nil
}
