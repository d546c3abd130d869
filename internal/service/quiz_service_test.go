package service

import (
	"edu_hub_backend/internal/model"
	"testing"
)

func makeQuestions(answers ...string) []model.Question {
	questions := make([]model.Question, 0, len(answers))
	for i, a := range answers {
		q := model.Question{
			QuestionText:  "question",
			OptionA:       "a",
			OptionB:       "b",
			OptionC:       "c",
			OptionD:       "d",
			CorrectAnswer: a,
		}
		q.ID = uint(i + 1)
		questions = append(questions, q)
	}
	return questions
}

func newSession(questions []model.Question) *AttemptSession {
	return &AttemptSession{
		StudentID: 1,
		Subject:   &model.Subject{Name: "Mathematics"},
		Questions: questions,
		Answers:   make(map[uint]string),
	}
}

func TestGrade(t *testing.T) {
	t.Run("部分答对", func(t *testing.T) {
		session := newSession(makeQuestions("B", "A", "D"))
		session.RecordAnswer(1, "B")
		session.RecordAnswer(2, "A")
		session.RecordAnswer(3, "C")

		result := Grade(session)
		if result.CorrectCount != 2 {
			t.Errorf("correct count = %d, want 2", result.CorrectCount)
		}
		if result.TotalQuestions != 3 {
			t.Errorf("total = %d, want 3", result.TotalQuestions)
		}
		if result.Percentage != 66.7 {
			t.Errorf("percentage = %v, want 66.7", result.Percentage)
		}
		if !result.Passed {
			t.Error("66.7% should pass")
		}
	})

	t.Run("全对", func(t *testing.T) {
		session := newSession(makeQuestions("A", "B", "C", "D"))
		for id, a := range map[uint]string{1: "A", 2: "B", 3: "C", 4: "D"} {
			session.RecordAnswer(id, a)
		}

		result := Grade(session)
		if result.Percentage != 100.0 {
			t.Errorf("percentage = %v, want 100.0", result.Percentage)
		}
	})

	t.Run("未作答按答错计入分母", func(t *testing.T) {
		session := newSession(makeQuestions("A", "B"))
		session.RecordAnswer(1, "A")
		// 第 2 题不作答

		result := Grade(session)
		if result.CorrectCount != 1 {
			t.Errorf("correct count = %d, want 1", result.CorrectCount)
		}
		if result.TotalQuestions != 2 {
			t.Errorf("total = %d, want 2", result.TotalQuestions)
		}
		if result.Percentage != 50.0 {
			t.Errorf("percentage = %v, want 50.0", result.Percentage)
		}
	})

	t.Run("完全未作答", func(t *testing.T) {
		session := newSession(makeQuestions("A", "B", "C"))

		result := Grade(session)
		if result.CorrectCount != 0 {
			t.Errorf("correct count = %d, want 0", result.CorrectCount)
		}
		if result.Percentage != 0.0 {
			t.Errorf("percentage = %v, want 0.0", result.Percentage)
		}
		if result.Passed {
			t.Error("0% should not pass")
		}
	})

	t.Run("零题不报错", func(t *testing.T) {
		session := newSession(nil)

		result := Grade(session)
		if result.TotalQuestions != 0 || result.Percentage != 0.0 {
			t.Errorf("got total=%d percentage=%v, want 0 and 0.0", result.TotalQuestions, result.Percentage)
		}
		if result.Passed {
			t.Error("empty session should not pass")
		}
	})

	t.Run("及格线上刚好及格", func(t *testing.T) {
		session := newSession(makeQuestions("A", "A", "A", "A", "A"))
		session.RecordAnswer(1, "A")
		session.RecordAnswer(2, "A")
		session.RecordAnswer(3, "B")

		result := Grade(session)
		if result.Percentage != 40.0 {
			t.Errorf("percentage = %v, want 40.0", result.Percentage)
		}
		if !result.Passed {
			t.Error("exactly 40% should pass")
		}
	})

	t.Run("非法答案按答错处理", func(t *testing.T) {
		session := newSession(makeQuestions("A"))
		session.RecordAnswer(1, "X")

		result := Grade(session)
		if result.CorrectCount != 0 {
			t.Errorf("correct count = %d, want 0", result.CorrectCount)
		}
		if result.Review[0].YourAnswer != "" {
			t.Errorf("your answer = %q, want empty", result.Review[0].YourAnswer)
		}
	})

	t.Run("答案比较不区分大小写", func(t *testing.T) {
		session := newSession(makeQuestions("B"))
		session.RecordAnswer(1, " b ")

		result := Grade(session)
		if result.CorrectCount != 1 {
			t.Errorf("correct count = %d, want 1", result.CorrectCount)
		}
	})

	t.Run("批改明细包含正确答案", func(t *testing.T) {
		session := newSession(makeQuestions("C"))
		session.RecordAnswer(1, "A")

		result := Grade(session)
		review := result.Review[0]
		if review.CorrectAnswer != "C" || review.YourAnswer != "A" || review.Correct {
			t.Errorf("review = %+v, want correct answer C, your answer A, correct false", review)
		}
		if review.CorrectAnswerText != "c" {
			t.Errorf("correct answer text = %q, want %q", review.CorrectAnswerText, "c")
		}
	})
}

func TestSampleQuestions(t *testing.T) {
	questions := makeQuestions("A", "B", "C", "D", "A", "B", "C", "D", "A", "B", "C", "D")

	t.Run("超出上限时截断", func(t *testing.T) {
		sampled := SampleQuestions(questions, 10)
		if len(sampled) != 10 {
			t.Fatalf("sampled %d questions, want 10", len(sampled))
		}

		seen := make(map[uint]bool)
		for _, q := range sampled {
			if seen[q.ID] {
				t.Errorf("question %d sampled twice", q.ID)
			}
			seen[q.ID] = true
		}
	})

	t.Run("不足上限时全取", func(t *testing.T) {
		few := makeQuestions("A", "B", "C")
		sampled := SampleQuestions(few, 10)
		if len(sampled) != 3 {
			t.Errorf("sampled %d questions, want 3", len(sampled))
		}
	})

	t.Run("不修改原切片", func(t *testing.T) {
		firstID := questions[0].ID
		for i := 0; i < 20; i++ {
			SampleQuestions(questions, 5)
		}
		if questions[0].ID != firstID {
			t.Error("source slice was reordered")
		}
	})
}

func TestNormalizeLabel(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"A", "A"},
		{"d", "D"},
		{" b ", "B"},
		{"", ""},
		{"E", ""},
		{"AB", ""},
		{"1", ""},
	}
	for _, c := range cases {
		if got := NormalizeLabel(c.in); got != c.want {
			t.Errorf("NormalizeLabel(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestPercentage(t *testing.T) {
	cases := []struct {
		correct int
		total   int
		want    float64
	}{
		{2, 3, 66.7},
		{1, 3, 33.3},
		{3, 3, 100.0},
		{0, 5, 0.0},
		{0, 0, 0.0},
		{1, 7, 14.3},
		{1, 8, 12.5},
	}
	for _, c := range cases {
		if got := Percentage(c.correct, c.total); got != c.want {
			t.Errorf("Percentage(%d, %d) = %v, want %v", c.correct, c.total, got, c.want)
		}
	}
}

func TestRecordAnswerOverwrite(t *testing.T) {
	session := newSession(makeQuestions("A"))
	session.RecordAnswer(1, "B")
	session.RecordAnswer(1, "A")

	result := Grade(session)
	if result.CorrectCount != 1 {
		t.Errorf("correct count = %d, want 1 after overwrite", result.CorrectCount)
	}
}

func TestViewsHideCorrectAnswer(t *testing.T) {
	session := newSession(makeQuestions("A", "B"))
	views := session.Views()
	if len(views) != 2 {
		t.Fatalf("got %d views, want 2", len(views))
	}
	for _, v := range views {
		if v.QuestionText == "" || v.OptionA == "" {
			t.Errorf("view %d missing question content", v.ID)
		}
	}
}
