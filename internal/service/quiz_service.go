package service

import (
	"edu_hub_backend/internal/config"
	"edu_hub_backend/internal/model"
	"edu_hub_backend/internal/repository"
	"edu_hub_backend/internal/util"
	"edu_hub_backend/pkg/monitoring"
	"errors"
	"math"
	"math/rand"
	"strings"
	"time"

	"gorm.io/gorm"
)

// QuizService 测验核心：抽题、作答会话、评分、成绩落库。
// 会话不在服务端保存，提交时由表单携带的题目 id 和答案重建。
type QuizService struct {
	QuestionRepo *repository.QuestionRepository
	SubjectRepo  *repository.SubjectRepository
	ResultRepo   *repository.QuizResultRepository
	Cfg          *config.Config
}

func NewQuizService(questionRepo *repository.QuestionRepository, subjectRepo *repository.SubjectRepository, resultRepo *repository.QuizResultRepository, cfg *config.Config) *QuizService {
	return &QuizService{
		QuestionRepo: questionRepo,
		SubjectRepo:  subjectRepo,
		ResultRepo:   resultRepo,
		Cfg:          cfg,
	}
}

// AttemptSession 一名学生对一个学科的单次作答，仅存活于一次请求周期内
type AttemptSession struct {
	StudentID uint
	Subject   *model.Subject
	Questions []model.Question
	Answers   map[uint]string
}

// RecordAnswer 记录/覆盖某题的选择，可重复修改直到提交。
// 非 A-D 的输入规整为未作答，评分时按答错处理，不拒绝整个提交。
func (s *AttemptSession) RecordAnswer(questionID uint, label string) {
	if s.Answers == nil {
		s.Answers = make(map[uint]string)
	}
	s.Answers[questionID] = NormalizeLabel(label)
}

// QuestionView 发给学生的题目视图，不含正确答案
type QuestionView struct {
	ID           uint             `json:"id"`
	QuestionText string           `json:"questionText"`
	OptionA      string           `json:"optionA"`
	OptionB      string           `json:"optionB"`
	OptionC      string           `json:"optionC"`
	OptionD      string           `json:"optionD"`
	Difficulty   model.Difficulty `json:"difficulty"`
}

// Views 返回会话内题目的学生视图
func (s *AttemptSession) Views() []QuestionView {
	views := make([]QuestionView, 0, len(s.Questions))
	for _, q := range s.Questions {
		views = append(views, QuestionView{
			ID:           q.ID,
			QuestionText: q.QuestionText,
			OptionA:      q.OptionA,
			OptionB:      q.OptionB,
			OptionC:      q.OptionC,
			OptionD:      q.OptionD,
			Difficulty:   q.Difficulty,
		})
	}
	return views
}

// QuestionReview 单题批改明细，供成绩回顾页做对错高亮
type QuestionReview struct {
	QuestionID        uint             `json:"questionId"`
	QuestionText      string           `json:"questionText"`
	OptionA           string           `json:"optionA"`
	OptionB           string           `json:"optionB"`
	OptionC           string           `json:"optionC"`
	OptionD           string           `json:"optionD"`
	Difficulty        model.Difficulty `json:"difficulty"`
	YourAnswer        string           `json:"yourAnswer"`
	CorrectAnswer     string           `json:"correctAnswer"`
	CorrectAnswerText string           `json:"correctAnswerText"`
	Correct           bool             `json:"correct"`
}

// GradeResult 一次提交的批改结果。Passed 以 PassPercentage 为及格线
type GradeResult struct {
	SubjectID      uint             `json:"subjectId"`
	SubjectName    string           `json:"subjectName"`
	CorrectCount   int              `json:"correctCount"`
	TotalQuestions int              `json:"totalQuestions"`
	Percentage     float64          `json:"percentage"`
	Passed         bool             `json:"passed"`
	Review         []QuestionReview `json:"review"`
}

// StartAttempt 为学生开启一次测验：校验学科、抽取至多 QuestionLimit 道随机题。
// 学科不存在返回 ErrSubjectNotFound；学科无题返回 ErrEmptyQuestionBank。
func (s *QuizService) StartAttempt(subjectID, studentID uint) (*AttemptSession, error) {
	subject, err := s.SubjectRepo.FindByID(subjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSubjectNotFound
		}
		return nil, err
	}

	questions, err := s.QuestionRepo.FindBySubject(subjectID)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, util.ErrEmptyQuestionBank
	}

	return &AttemptSession{
		StudentID: studentID,
		Subject:   subject,
		Questions: SampleQuestions(questions, s.Cfg.Quiz.QuestionLimit),
		Answers:   make(map[uint]string),
	}, nil
}

// BuildSession 从提交的表单数据重建会话（题目 id 以提交时携带的为准，
// 不属于该学科的 id 被忽略）
func (s *QuizService) BuildSession(subjectID, studentID uint, questionIDs []uint) (*AttemptSession, error) {
	subject, err := s.SubjectRepo.FindByID(subjectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSubjectNotFound
		}
		return nil, err
	}

	questions, err := s.QuestionRepo.FindByIDsForSubject(subjectID, questionIDs)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, util.ErrEmptyQuestionBank
	}

	return &AttemptSession{
		StudentID: studentID,
		Subject:   subject,
		Questions: questions,
		Answers:   make(map[uint]string),
	}, nil
}

// Grade 纯评分，不落库。未作答计入分母并按答错处理；
// 标签比较不区分大小写；总题数为零时百分比为 0，不报错。
func Grade(session *AttemptSession) *GradeResult {
	result := &GradeResult{
		Review: make([]QuestionReview, 0, len(session.Questions)),
	}
	if session.Subject != nil {
		result.SubjectID = session.Subject.ID
		result.SubjectName = session.Subject.Name
	}

	for _, q := range session.Questions {
		answer := NormalizeLabel(session.Answers[q.ID])
		correct := answer != "" && answer == NormalizeLabel(q.CorrectAnswer)
		if correct {
			result.CorrectCount++
		}
		result.Review = append(result.Review, QuestionReview{
			QuestionID:        q.ID,
			QuestionText:      q.QuestionText,
			OptionA:           q.OptionA,
			OptionB:           q.OptionB,
			OptionC:           q.OptionC,
			OptionD:           q.OptionD,
			Difficulty:        q.Difficulty,
			YourAnswer:        answer,
			CorrectAnswer:     strings.ToUpper(q.CorrectAnswer),
			CorrectAnswerText: q.Option(NormalizeLabel(q.CorrectAnswer)),
			Correct:           correct,
		})
	}

	result.TotalQuestions = len(session.Questions)
	result.Percentage = Percentage(result.CorrectCount, result.TotalQuestions)
	result.Passed = result.TotalQuestions > 0 && result.Percentage >= util.PassPercentage
	return result
}

// Submit 批改并追加一条成绩记录。每次提交都是新的历史记录，
// 重考不会覆盖旧成绩。只有落库失败会中止提交。
func (s *QuizService) Submit(session *AttemptSession) (*GradeResult, *model.QuizResult, error) {
	grade := Grade(session)

	result := &model.QuizResult{
		UserID:         session.StudentID,
		SubjectID:      grade.SubjectID,
		Score:          grade.CorrectCount,
		TotalQuestions: grade.TotalQuestions,
		Percentage:     grade.Percentage,
		TakenAt:        time.Now(),
	}

	if err := s.ResultRepo.Create(result); err != nil {
		return nil, nil, err
	}

	monitoring.QuizSubmissions.WithLabelValues(grade.SubjectName).Inc()

	return grade, result, nil
}

// SampleQuestions 无放回随机抽取至多 limit 道题，顺序随机
func SampleQuestions(questions []model.Question, limit int) []model.Question {
	shuffled := make([]model.Question, len(questions))
	copy(shuffled, questions)

	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if limit > 0 && len(shuffled) > limit {
		shuffled = shuffled[:limit]
	}
	return shuffled
}

// NormalizeLabel 去空格并转大写；合法标签为 A-D，其余返回空串
func NormalizeLabel(label string) string {
	label = strings.ToUpper(strings.TrimSpace(label))
	switch label {
	case "A", "B", "C", "D":
		return label
	}
	return ""
}

// Percentage 计算得分百分比，保留一位小数；总数为零时返回 0
func Percentage(correct, total int) float64 {
	if total <= 0 {
		return 0
	}
	return Round1(float64(correct) / float64(total) * 100)
}

// Round1 四舍五入到一位小数
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
