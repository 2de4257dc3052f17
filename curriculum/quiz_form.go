package curriculum

import (
	"errors"
	"fmt"
	"strconv"
)

// QuizStep enumerates the quiz editor's three-step flow.
type QuizStep int

const (
	QuizStepInfo QuizStep = iota
	QuizStepQuestions
	QuizStepSettings
)

func (s QuizStep) String() string {
	switch s {
	case QuizStepQuestions:
		return "questions"
	case QuizStepSettings:
		return "settings"
	}
	return "info"
}

var (
	ErrQuestionCount    = fmt.Errorf("quiz requires exactly %d questions", QuizQuestionCount)
	ErrQuestionPrompt   = errors.New("question prompt must not be empty")
	ErrQuestionAnswer   = errors.New("question requires a selected correct answer")
	ErrQuestionNotFound = errors.New("question not found")
	ErrQuestionEditing  = errors.New("another question is already being edited")
)

// QuizForm holds the quiz editor's state across its info, questions and
// settings steps. The questions step cannot be left until exactly
// QuizQuestionCount questions are present.
type QuizForm struct {
	step QuizStep

	Title   string
	Summary string
	Gate    UnlockGate

	questions []Question
	editingID string

	TimeLimitMinutes int
	MaxAttempts      int
	PassingGrade     int
	Close            CloseGate

	newID func() string
}

func NewQuizForm(existing *ContentItem) *QuizForm {
	f := &QuizForm{
		step:             QuizStepInfo,
		TimeLimitMinutes: 5,
		MaxAttempts:      1,
		PassingGrade:     70,
		newID:            NewID,
	}
	if existing == nil || existing.Quiz == nil {
		return f
	}
	q := existing.Quiz
	f.Title = existing.Title
	f.Gate = existing.UnlockGate
	f.Summary = q.Summary
	for _, qq := range q.Questions {
		f.questions = append(f.questions, qq.clone())
	}
	f.TimeLimitMinutes = q.TimeLimitMinutes
	f.MaxAttempts = q.MaxAttempts
	f.PassingGrade = q.PassingGrade
	f.Close = q.CloseGate
	return f
}

func (f *QuizForm) Step() QuizStep        { return f.step }
func (f *QuizForm) Questions() []Question { return f.questions }

// NextStep advances the flow. Leaving the questions step is refused
// until the question count is exact.
func (f *QuizForm) NextStep() error {
	switch f.step {
	case QuizStepInfo:
		if f.Title == "" {
			return ErrEmptyTitle
		}
		f.step = QuizStepQuestions
	case QuizStepQuestions:
		if len(f.questions) != QuizQuestionCount {
			return ErrQuestionCount
		}
		f.step = QuizStepSettings
	}
	return nil
}

func (f *QuizForm) PrevStep() {
	if f.step > QuizStepInfo {
		f.step--
	}
}

func validateQuestion(q Question) error {
	if q.Prompt == "" {
		return ErrQuestionPrompt
	}
	switch q.Type {
	case QuestionTrueFalse:
		if q.CorrectAnswer != "true" && q.CorrectAnswer != "false" {
			return ErrQuestionAnswer
		}
	case QuestionMultipleChoice:
		idx, err := strconv.Atoi(q.CorrectAnswer)
		if err != nil || idx < 0 || idx >= len(q.Options) {
			return ErrQuestionAnswer
		}
	default:
		return fmt.Errorf("unknown question type %q", q.Type)
	}
	return nil
}

// AddQuestion appends a validated question. The list is capped at the
// fixed quiz size.
func (f *QuizForm) AddQuestion(q Question) error {
	if err := validateQuestion(q); err != nil {
		return err
	}
	if len(f.questions) >= QuizQuestionCount {
		return ErrQuestionCount
	}
	if q.ID == "" {
		q.ID = f.newID()
	}
	f.questions = append(f.questions, q)
	return nil
}

// StartEditQuestion opens the shared authoring form for one existing
// question. Only one question may be in edit mode at a time.
func (f *QuizForm) StartEditQuestion(id string) (Question, error) {
	if f.editingID != "" && f.editingID != id {
		return Question{}, ErrQuestionEditing
	}
	for _, q := range f.questions {
		if q.ID == id {
			f.editingID = id
			return q.clone(), nil
		}
	}
	return Question{}, fmt.Errorf("%w: %s", ErrQuestionNotFound, id)
}

// SaveQuestion replaces the question under edit and closes the form.
func (f *QuizForm) SaveQuestion(q Question) error {
	if f.editingID == "" {
		return f.AddQuestion(q)
	}
	if err := validateQuestion(q); err != nil {
		return err
	}
	for i := range f.questions {
		if f.questions[i].ID == f.editingID {
			q.ID = f.editingID
			f.questions[i] = q
			f.editingID = ""
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrQuestionNotFound, f.editingID)
}

func (f *QuizForm) CancelEditQuestion() { f.editingID = "" }

func (f *QuizForm) DeleteQuestion(id string) error {
	for i := range f.questions {
		if f.questions[i].ID == id {
			f.questions = append(f.questions[:i], f.questions[i+1:]...)
			if f.editingID == id {
				f.editingID = ""
			}
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrQuestionNotFound, id)
}

func (f *QuizForm) Validate() error {
	if f.Title == "" {
		return ErrEmptyTitle
	}
	if len(f.questions) != QuizQuestionCount {
		return ErrQuestionCount
	}
	if f.TimeLimitMinutes < 5 || f.TimeLimitMinutes > 10 {
		return errors.New("time limit must be between 5 and 10 minutes")
	}
	if f.MaxAttempts < 1 || f.MaxAttempts > 2 {
		return errors.New("max attempts must be 1 or 2")
	}
	if f.PassingGrade < 0 || f.PassingGrade > 100 {
		return errors.New("passing grade must be between 0 and 100")
	}
	return nil
}

// Build assembles the quiz payload from all three steps.
func (f *QuizForm) Build() (ContentItem, error) {
	if err := f.Validate(); err != nil {
		return ContentItem{}, err
	}
	questions := make([]Question, len(f.questions))
	for i, q := range f.questions {
		questions[i] = q.clone()
	}
	return ContentItem{
		Kind:       KindQuiz,
		Title:      f.Title,
		UnlockGate: f.Gate,
		Quiz: &QuizContent{
			Summary:          f.Summary,
			Questions:        questions,
			TimeLimitMinutes: f.TimeLimitMinutes,
			MaxAttempts:      f.MaxAttempts,
			PassingGrade:     f.PassingGrade,
			CloseGate:        f.Close,
		},
	}, nil
}
