package curriculum

import (
	"errors"
	"fmt"
	"testing"
)

func trueFalseQuestion(n int) Question {
	return Question{
		Type:          QuestionTrueFalse,
		Prompt:        fmt.Sprintf("Statement %d is correct.", n),
		CorrectAnswer: "true",
	}
}

func TestQuizFlowBuildsCompleteItem(t *testing.T) {
	f := NewQuizForm(nil)
	f.Title = "Quiz 1"

	if err := f.NextStep(); err != nil {
		t.Fatalf("info -> questions: %v", err)
	}
	for i := 0; i < QuizQuestionCount; i++ {
		if err := f.AddQuestion(trueFalseQuestion(i)); err != nil {
			t.Fatalf("question %d: %v", i, err)
		}
	}
	if err := f.NextStep(); err != nil {
		t.Fatalf("questions -> settings: %v", err)
	}

	f.TimeLimitMinutes = 5
	f.MaxAttempts = 1
	f.PassingGrade = 70

	item, err := f.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if item.Kind != KindQuiz {
		t.Fatalf("kind: %q", item.Kind)
	}
	if len(item.Quiz.Questions) != 10 {
		t.Fatalf("questions: %d", len(item.Quiz.Questions))
	}
	if item.Quiz.TotalMarks() != 20 {
		t.Fatalf("total marks: %d", item.Quiz.TotalMarks())
	}
}

func TestQuizCannotLeaveQuestionsShort(t *testing.T) {
	f := NewQuizForm(nil)
	f.Title = "Quiz"
	f.NextStep()
	for i := 0; i < QuizQuestionCount-1; i++ {
		f.AddQuestion(trueFalseQuestion(i))
	}
	if err := f.NextStep(); !errors.Is(err, ErrQuestionCount) {
		t.Fatalf("expected ErrQuestionCount, got %v", err)
	}
	if f.Step() != QuizStepQuestions {
		t.Fatalf("step advanced to %v", f.Step())
	}
}

func TestQuizQuestionListCapped(t *testing.T) {
	f := NewQuizForm(nil)
	for i := 0; i < QuizQuestionCount; i++ {
		if err := f.AddQuestion(trueFalseQuestion(i)); err != nil {
			t.Fatalf("question %d: %v", i, err)
		}
	}
	if err := f.AddQuestion(trueFalseQuestion(10)); !errors.Is(err, ErrQuestionCount) {
		t.Fatalf("expected cap error, got %v", err)
	}
}

func TestQuestionValidation(t *testing.T) {
	f := NewQuizForm(nil)

	if err := f.AddQuestion(Question{Type: QuestionTrueFalse, CorrectAnswer: "true"}); !errors.Is(err, ErrQuestionPrompt) {
		t.Fatalf("empty prompt: %v", err)
	}
	if err := f.AddQuestion(Question{Type: QuestionTrueFalse, Prompt: "p", CorrectAnswer: "yes"}); !errors.Is(err, ErrQuestionAnswer) {
		t.Fatalf("bad true/false answer: %v", err)
	}
	mc := Question{
		Type:          QuestionMultipleChoice,
		Prompt:        "Pick one",
		Options:       []string{"a", "b", "c"},
		CorrectAnswer: "3",
	}
	if err := f.AddQuestion(mc); !errors.Is(err, ErrQuestionAnswer) {
		t.Fatalf("out-of-range option index: %v", err)
	}
	mc.CorrectAnswer = "1"
	if err := f.AddQuestion(mc); err != nil {
		t.Fatalf("valid multiple choice rejected: %v", err)
	}
}

func TestQuizSingleQuestionEditAtATime(t *testing.T) {
	f := NewQuizForm(nil)
	for i := 0; i < 3; i++ {
		f.AddQuestion(trueFalseQuestion(i))
	}
	qs := f.Questions()

	if _, err := f.StartEditQuestion(qs[0].ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := f.StartEditQuestion(qs[1].ID); !errors.Is(err, ErrQuestionEditing) {
		t.Fatalf("expected ErrQuestionEditing, got %v", err)
	}

	edited := trueFalseQuestion(0)
	edited.Prompt = "Rewritten prompt."
	if err := f.SaveQuestion(edited); err != nil {
		t.Fatalf("save: %v", err)
	}
	if f.Questions()[0].Prompt != "Rewritten prompt." {
		t.Fatal("edit not applied in place")
	}
	if f.Questions()[0].ID != qs[0].ID {
		t.Fatal("question id must survive the edit")
	}
	// form is free again
	if _, err := f.StartEditQuestion(qs[1].ID); err != nil {
		t.Fatalf("edit after save: %v", err)
	}
}

func TestQuizSettingsBounds(t *testing.T) {
	f := NewQuizForm(nil)
	f.Title = "Quiz"
	for i := 0; i < QuizQuestionCount; i++ {
		f.AddQuestion(trueFalseQuestion(i))
	}

	f.TimeLimitMinutes = 11
	if _, err := f.Build(); err == nil {
		t.Fatal("time limit 11 accepted")
	}
	f.TimeLimitMinutes = 10
	f.MaxAttempts = 3
	if _, err := f.Build(); err == nil {
		t.Fatal("max attempts 3 accepted")
	}
	f.MaxAttempts = 2
	f.PassingGrade = 101
	if _, err := f.Build(); err == nil {
		t.Fatal("passing grade 101 accepted")
	}
	f.PassingGrade = 100
	if _, err := f.Build(); err != nil {
		t.Fatalf("valid settings rejected: %v", err)
	}
}
