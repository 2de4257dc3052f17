package curriculum

// ItemKind discriminates the four content item variants.
type ItemKind string

const (
	KindLesson     ItemKind = "lesson"
	KindQuiz       ItemKind = "quiz"
	KindAssignment ItemKind = "assignment"
	KindLiveClass  ItemKind = "live_class"
)

func (k ItemKind) Valid() bool {
	switch k {
	case KindLesson, KindQuiz, KindAssignment, KindLiveClass:
		return true
	}
	return false
}

// QuestionType discriminates quiz question variants.
type QuestionType string

const (
	QuestionTrueFalse      QuestionType = "true_false"
	QuestionMultipleChoice QuestionType = "multiple_choice"
)

// Meeting platforms for live classes.
const (
	PlatformGoogleMeet = "google_meet"
	PlatformZoom       = "zoom"
	PlatformOther      = "other"
)

// QuizQuestionCount is the fixed number of questions every quiz carries.
const QuizQuestionCount = 10

// MarksPerQuestion is the fixed weight of every quiz question.
const MarksPerQuestion = 2

// UnlockGate optionally delays availability of an item until a date/time.
type UnlockGate struct {
	HasUnlockDate bool   `json:"has_unlock_date"`
	UnlockDate    string `json:"unlock_date,omitempty"`
	UnlockTime    string `json:"unlock_time,omitempty"`
}

// CloseGate optionally closes submissions after a date/time. Quizzes and
// assignments carry one in addition to the unlock gate.
type CloseGate struct {
	HasCloseDate bool   `json:"has_close_date"`
	CloseDate    string `json:"close_date,omitempty"`
	CloseTime    string `json:"close_time,omitempty"`
}

// ExternalLink is a titled URL attached to a lesson.
type ExternalLink struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Question is one quiz question. CorrectAnswer holds the option index as
// a string for multiple choice, or literal "true"/"false" for true/false.
type Question struct {
	ID            string       `json:"id"`
	Type          QuestionType `json:"type"`
	Prompt        string       `json:"prompt"`
	Description   string       `json:"description,omitempty"`
	CorrectAnswer string       `json:"correct_answer"`
	Options       []string     `json:"options,omitempty"`
}

func (q Question) clone() Question {
	out := q
	if q.Options != nil {
		out.Options = append([]string(nil), q.Options...)
	}
	return out
}

// LessonContent is the lesson variant payload.
type LessonContent struct {
	Description string         `json:"description"`
	Video       FileRef        `json:"video"`
	Cover       FileRef        `json:"cover"`
	Duration    string         `json:"duration"` // HH:MM:SS
	Files       []FileRef      `json:"files,omitempty"`
	Links       []ExternalLink `json:"links,omitempty"`
}

// QuizContent is the quiz variant payload. Questions holds exactly
// QuizQuestionCount entries once the quiz is complete.
type QuizContent struct {
	Summary          string     `json:"summary"`
	Questions        []Question `json:"questions"`
	TimeLimitMinutes int        `json:"time_limit_minutes"` // 5-10
	MaxAttempts      int        `json:"max_attempts"`       // 1-2
	PassingGrade     int        `json:"passing_grade"`      // 0-100
	CloseGate
}

// TotalMarks is derived from the question count, never stored.
func (q *QuizContent) TotalMarks() int {
	return len(q.Questions) * MarksPerQuestion
}

// ResubmissionPolicy governs assignment resubmission.
type ResubmissionPolicy struct {
	Allowed     bool `json:"allowed"`
	MaxAttempts int  `json:"max_attempts,omitempty"`
}

// AssignmentContent is the assignment variant payload.
type AssignmentContent struct {
	Body          string             `json:"body"`
	Attachments   []FileRef          `json:"attachments,omitempty"`
	TotalPoints   int                `json:"total_points"`
	MinPassPoints int                `json:"min_pass_points"`
	MaxFiles      int                `json:"max_files"`
	MaxFileSizeMB int                `json:"max_file_size_mb"`
	Resubmission  ResubmissionPolicy `json:"resubmission"`
	CloseGate
}

// LiveClassContent is the live class variant payload.
type LiveClassContent struct {
	Description     string `json:"description"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	DurationMinutes int    `json:"duration_minutes"`
	Platform        string `json:"platform"`
	MeetingLink     string `json:"meeting_link"`
}

// ContentItem is a tagged union over the four item variants. Exactly the
// payload matching Kind is non-nil. Items of all kinds share one ordered
// list per topic so delivery order is preserved across kinds.
type ContentItem struct {
	ID    string   `json:"id"`
	Kind  ItemKind `json:"kind"`
	Title string   `json:"title"`
	UnlockGate

	Lesson     *LessonContent     `json:"lesson,omitempty"`
	Quiz       *QuizContent       `json:"quiz,omitempty"`
	Assignment *AssignmentContent `json:"assignment,omitempty"`
	LiveClass  *LiveClassContent  `json:"live_class,omitempty"`
}

// Clone deep-copies the item, keeping its id.
func (it ContentItem) Clone() ContentItem {
	out := it
	if it.Lesson != nil {
		l := *it.Lesson
		l.Video = it.Lesson.Video.clone()
		l.Cover = it.Lesson.Cover.clone()
		if it.Lesson.Files != nil {
			l.Files = make([]FileRef, len(it.Lesson.Files))
			for i, f := range it.Lesson.Files {
				l.Files[i] = f.clone()
			}
		}
		if it.Lesson.Links != nil {
			l.Links = append([]ExternalLink(nil), it.Lesson.Links...)
		}
		out.Lesson = &l
	}
	if it.Quiz != nil {
		q := *it.Quiz
		if it.Quiz.Questions != nil {
			q.Questions = make([]Question, len(it.Quiz.Questions))
			for i, qq := range it.Quiz.Questions {
				q.Questions[i] = qq.clone()
			}
		}
		out.Quiz = &q
	}
	if it.Assignment != nil {
		a := *it.Assignment
		if it.Assignment.Attachments != nil {
			a.Attachments = make([]FileRef, len(it.Assignment.Attachments))
			for i, f := range it.Assignment.Attachments {
				a.Attachments[i] = f.clone()
			}
		}
		out.Assignment = &a
	}
	if it.LiveClass != nil {
		lc := *it.LiveClass
		out.LiveClass = &lc
	}
	return out
}

// pendingFiles lists every pending reference in the item, in declared
// field order. Used by the save pipeline to drive sequential uploads.
func (it *ContentItem) pendingFiles() []*FileRef {
	var refs []*FileRef
	if it.Lesson != nil {
		if it.Lesson.Video.IsPending() {
			refs = append(refs, &it.Lesson.Video)
		}
		if it.Lesson.Cover.IsPending() {
			refs = append(refs, &it.Lesson.Cover)
		}
		for i := range it.Lesson.Files {
			if it.Lesson.Files[i].IsPending() {
				refs = append(refs, &it.Lesson.Files[i])
			}
		}
	}
	if it.Assignment != nil {
		for i := range it.Assignment.Attachments {
			if it.Assignment.Attachments[i].IsPending() {
				refs = append(refs, &it.Assignment.Attachments[i])
			}
		}
	}
	return refs
}
