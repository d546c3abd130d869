package model

import "time"

// StudentSummary 学生个人测验汇总
type StudentSummary struct {
	TotalQuizzes      int     `json:"totalQuizzes"`
	AveragePercentage float64 `json:"averagePercentage"`
	SubjectsAttempted int     `json:"subjectsAttempted"`
}

// SubjectPerformance 按学科的成绩汇总，一行对应学生考过的一个学科
type SubjectPerformance struct {
	SubjectID         uint    `json:"subjectId"`
	SubjectName       string  `json:"subjectName"`
	Color             string  `json:"color"`
	AveragePercentage float64 `json:"averagePercentage"`
	AttemptCount      int     `json:"attemptCount"`
}

// CohortRow 教师/管理员班级分析中的一行（每个学生一行，零记录学生也在内）
type CohortRow struct {
	StudentID         uint       `json:"studentId"`
	Name              string     `json:"name"`
	Email             string     `json:"email"`
	StudentYear       string     `json:"studentYear"`
	TotalQuizzes      int        `json:"totalQuizzes"`
	AveragePercentage float64    `json:"averagePercentage"`
	BestPercentage    float64    `json:"bestPercentage"`
	SubjectsAttempted int        `json:"subjectsAttempted"`
	LastActive        *time.Time `json:"lastActive"`
}
