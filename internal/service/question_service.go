package service

import (
	"edu_hub_backend/internal/model"
	"edu_hub_backend/internal/repository"
	"edu_hub_backend/internal/util"
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

// QuestionService 题库管理：教师维护自己的题目，管理员可以管理全部。
type QuestionService struct {
	QuestionRepo *repository.QuestionRepository
	SubjectRepo  *repository.SubjectRepository
}

func NewQuestionService(questionRepo *repository.QuestionRepository, subjectRepo *repository.SubjectRepository) *QuestionService {
	return &QuestionService{QuestionRepo: questionRepo, SubjectRepo: subjectRepo}
}

type QuestionReq struct {
	SubjectID     uint             `json:"subjectId" binding:"required"`
	QuestionText  string           `json:"questionText" binding:"required"`
	OptionA       string           `json:"optionA" binding:"required"`
	OptionB       string           `json:"optionB" binding:"required"`
	OptionC       string           `json:"optionC" binding:"required"`
	OptionD       string           `json:"optionD" binding:"required"`
	CorrectAnswer string           `json:"correctAnswer" binding:"required"`
	Difficulty    model.Difficulty `json:"difficulty"`
}

// QuestionPermission 当前用户对某道题的操作能力，在边界处一次性判定
type QuestionPermission struct {
	CanEdit   bool `json:"canEdit"`
	CanDelete bool `json:"canDelete"`
}

// PermissionFor 管理员可操作任何题目，教师只能操作自己创建的
func PermissionFor(claims *util.Claims, q *model.Question) QuestionPermission {
	if claims == nil {
		return QuestionPermission{}
	}
	owned := claims.UserID == q.CreatedBy
	switch claims.Role {
	case model.Admin:
		return QuestionPermission{CanEdit: true, CanDelete: true}
	case model.Teacher:
		return QuestionPermission{CanEdit: owned, CanDelete: owned}
	}
	return QuestionPermission{}
}

func (s *QuestionService) Create(creatorID uint, req QuestionReq) (*model.Question, error) {
	if _, err := s.SubjectRepo.FindByID(req.SubjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSubjectNotFound
		}
		return nil, err
	}

	label := NormalizeLabel(req.CorrectAnswer)
	if label == "" {
		return nil, errors.New("correct answer must be one of A, B, C, D")
	}

	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = model.DifficultyMedium
	}

	q := &model.Question{
		SubjectID:     req.SubjectID,
		QuestionText:  strings.TrimSpace(req.QuestionText),
		OptionA:       strings.TrimSpace(req.OptionA),
		OptionB:       strings.TrimSpace(req.OptionB),
		OptionC:       strings.TrimSpace(req.OptionC),
		OptionD:       strings.TrimSpace(req.OptionD),
		CorrectAnswer: label,
		Difficulty:    difficulty,
		CreatedBy:     creatorID,
	}
	if err := s.QuestionRepo.Create(q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *QuestionService) Get(id uint) (*model.Question, error) {
	q, err := s.QuestionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}
	return q, nil
}

func (s *QuestionService) List(subjectID, creatorID uint, difficulty model.Difficulty, page, limit int) ([]model.Question, int64, error) {
	return s.QuestionRepo.List(subjectID, creatorID, difficulty, page, limit)
}

// Update 由调用方先用 PermissionFor 判定权限，这里再兜底校验一次
func (s *QuestionService) Update(claims *util.Claims, id uint, req QuestionReq) (*model.Question, error) {
	q, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if !PermissionFor(claims, q).CanEdit {
		return nil, util.ErrPermissionDenied
	}

	label := NormalizeLabel(req.CorrectAnswer)
	if label == "" {
		return nil, errors.New("correct answer must be one of A, B, C, D")
	}

	q.SubjectID = req.SubjectID
	q.QuestionText = strings.TrimSpace(req.QuestionText)
	q.OptionA = strings.TrimSpace(req.OptionA)
	q.OptionB = strings.TrimSpace(req.OptionB)
	q.OptionC = strings.TrimSpace(req.OptionC)
	q.OptionD = strings.TrimSpace(req.OptionD)
	q.CorrectAnswer = label
	if req.Difficulty != "" {
		q.Difficulty = req.Difficulty
	}

	if err := s.QuestionRepo.Update(q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *QuestionService) Delete(claims *util.Claims, id uint) error {
	q, err := s.Get(id)
	if err != nil {
		return err
	}
	if !PermissionFor(claims, q).CanDelete {
		return util.ErrPermissionDenied
	}
	return s.QuestionRepo.Delete(q.ID)
}

// ImportResult CSV 批量导入结果统计
type ImportResult struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}

// ParseQuestionCSV 解析批量导入的 CSV。
// 列：question_text,option_a,option_b,option_c,option_d,correct_answer,subject_id[,difficulty]
// 首行视为表头跳过；非法行计数后继续，不中断整个导入。
func ParseQuestionCSV(r io.Reader, createdBy uint) ([]model.Question, *ImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, err
	}

	result := &ImportResult{}
	questions := make([]model.Question, 0, len(rows))

	for i, row := range rows {
		if i == 0 {
			continue // 表头
		}
		if len(row) < 7 {
			result.Skipped++
			result.Errors = append(result.Errors, "row "+strconv.Itoa(i+1)+": expected at least 7 columns")
			continue
		}

		label := NormalizeLabel(row[5])
		subjectID, _ := strconv.ParseUint(strings.TrimSpace(row[6]), 10, 32)

		text := strings.TrimSpace(row[0])
		optA, optB := strings.TrimSpace(row[1]), strings.TrimSpace(row[2])
		optC, optD := strings.TrimSpace(row[3]), strings.TrimSpace(row[4])

		if text == "" || optA == "" || optB == "" || optC == "" || optD == "" || label == "" || subjectID == 0 {
			result.Skipped++
			result.Errors = append(result.Errors, "row "+strconv.Itoa(i+1)+": missing field or invalid correct answer")
			continue
		}

		difficulty := model.DifficultyMedium
		if len(row) > 7 {
			switch model.Difficulty(strings.ToLower(strings.TrimSpace(row[7]))) {
			case model.DifficultyEasy:
				difficulty = model.DifficultyEasy
			case model.DifficultyHard:
				difficulty = model.DifficultyHard
			}
		}

		questions = append(questions, model.Question{
			SubjectID:     uint(subjectID),
			QuestionText:  text,
			OptionA:       optA,
			OptionB:       optB,
			OptionC:       optC,
			OptionD:       optD,
			CorrectAnswer: label,
			Difficulty:    difficulty,
			CreatedBy:     createdBy,
		})
	}

	result.Imported = len(questions)
	return questions, result, nil
}

// ImportCSV 批量导入题目
func (s *QuestionService) ImportCSV(r io.Reader, createdBy uint) (*ImportResult, error) {
	questions, result, err := ParseQuestionCSV(r, createdBy)
	if err != nil {
		return nil, err
	}
	if err := s.QuestionRepo.CreateBatch(questions); err != nil {
		return nil, err
	}
	return result, nil
}

// ExportCSV 导出学科题目为 CSV，与导入格式一致
func (s *QuestionService) ExportCSV(w io.Writer, subjectID uint) error {
	questions, err := s.QuestionRepo.FindBySubject(subjectID)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	defer writer.Flush()

	header := []string{"question_text", "option_a", "option_b", "option_c", "option_d", "correct_answer", "subject_id", "difficulty"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, q := range questions {
		row := []string{
			q.QuestionText,
			q.OptionA,
			q.OptionB,
			q.OptionC,
			q.OptionD,
			q.CorrectAnswer,
			strconv.FormatUint(uint64(q.SubjectID), 10),
			string(q.Difficulty),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	return writer.Error()
}
