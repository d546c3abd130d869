package service

import (
	"edu_hub_backend/internal/model"
	"edu_hub_backend/internal/util"
	"strings"
	"testing"
)

const csvHeader = "question_text,option_a,option_b,option_c,option_d,correct_answer,subject_id,difficulty\n"

func TestParseQuestionCSV(t *testing.T) {
	t.Run("有效行", func(t *testing.T) {
		input := csvHeader +
			"What is 2+2?,1,2,3,4,D,1,easy\n" +
			"Capital of France?,Paris,London,Rome,Berlin,A,2,hard\n"

		questions, result, err := ParseQuestionCSV(strings.NewReader(input), 7)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Imported != 2 || result.Skipped != 0 {
			t.Fatalf("imported=%d skipped=%d, want 2/0", result.Imported, result.Skipped)
		}

		q := questions[0]
		if q.QuestionText != "What is 2+2?" || q.CorrectAnswer != "D" || q.SubjectID != 1 {
			t.Errorf("first question parsed wrong: %+v", q)
		}
		if q.Difficulty != model.DifficultyEasy {
			t.Errorf("difficulty = %s, want easy", q.Difficulty)
		}
		if q.CreatedBy != 7 {
			t.Errorf("createdBy = %d, want 7", q.CreatedBy)
		}
		if questions[1].Difficulty != model.DifficultyHard {
			t.Errorf("second difficulty = %s, want hard", questions[1].Difficulty)
		}
	})

	t.Run("缺省难度为 medium", func(t *testing.T) {
		input := csvHeader + "Q?,a,b,c,d,B,3\n"

		questions, _, err := ParseQuestionCSV(strings.NewReader(input), 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if questions[0].Difficulty != model.DifficultyMedium {
			t.Errorf("difficulty = %s, want medium", questions[0].Difficulty)
		}
	})

	t.Run("非法正确答案跳过不中断", func(t *testing.T) {
		input := csvHeader +
			"Q1?,a,b,c,d,E,1\n" +
			"Q2?,a,b,c,d,C,1\n"

		questions, result, err := ParseQuestionCSV(strings.NewReader(input), 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Imported != 1 || result.Skipped != 1 {
			t.Fatalf("imported=%d skipped=%d, want 1/1", result.Imported, result.Skipped)
		}
		if questions[0].QuestionText != "Q2?" {
			t.Errorf("kept question = %q, want Q2?", questions[0].QuestionText)
		}
		if len(result.Errors) != 1 || !strings.Contains(result.Errors[0], "row 2") {
			t.Errorf("errors = %v, want one entry naming row 2", result.Errors)
		}
	})

	t.Run("列数不足跳过", func(t *testing.T) {
		input := csvHeader + "Q1?,a,b,c\n"

		_, result, err := ParseQuestionCSV(strings.NewReader(input), 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Skipped != 1 || result.Imported != 0 {
			t.Errorf("imported=%d skipped=%d, want 0/1", result.Imported, result.Skipped)
		}
	})

	t.Run("学科 id 非法跳过", func(t *testing.T) {
		input := csvHeader + "Q1?,a,b,c,d,A,zero\n"

		_, result, err := ParseQuestionCSV(strings.NewReader(input), 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Skipped != 1 {
			t.Errorf("skipped = %d, want 1", result.Skipped)
		}
	})

	t.Run("仅表头", func(t *testing.T) {
		questions, result, err := ParseQuestionCSV(strings.NewReader(csvHeader), 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(questions) != 0 || result.Imported != 0 || result.Skipped != 0 {
			t.Errorf("got %d questions imported=%d skipped=%d, want all zero", len(questions), result.Imported, result.Skipped)
		}
	})

	t.Run("小写答案规整为大写", func(t *testing.T) {
		input := csvHeader + "Q?,a,b,c,d,b,1\n"

		questions, _, err := ParseQuestionCSV(strings.NewReader(input), 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if questions[0].CorrectAnswer != "B" {
			t.Errorf("correct answer = %q, want B", questions[0].CorrectAnswer)
		}
	})
}

func adminClaims(id uint) *util.Claims {
	return &util.Claims{UserID: id, Role: model.Admin}
}

func teacherClaims(id uint) *util.Claims {
	return &util.Claims{UserID: id, Role: model.Teacher}
}

func TestPermissionFor(t *testing.T) {
	q := &model.Question{CreatedBy: 5}

	t.Run("管理员可编辑可删除", func(t *testing.T) {
		p := PermissionFor(adminClaims(1), q)
		if !p.CanEdit || !p.CanDelete {
			t.Errorf("admin permission = %+v, want full access", p)
		}
	})

	t.Run("创建者本人可编辑可删除", func(t *testing.T) {
		p := PermissionFor(teacherClaims(5), q)
		if !p.CanEdit || !p.CanDelete {
			t.Errorf("owner permission = %+v, want full access", p)
		}
	})

	t.Run("其他教师只读", func(t *testing.T) {
		p := PermissionFor(teacherClaims(6), q)
		if p.CanEdit || p.CanDelete {
			t.Errorf("non-owner permission = %+v, want read-only", p)
		}
	})
}
