package dto

import "github.com/skyward-academy/curricula_api/curriculum"

// Builder session DTOs

type BuilderSessionResponse struct {
	SessionID string                 `json:"session_id"`
	CourseID  string                 `json:"course_id"`
	Stage     string                 `json:"stage"`
	Focus     curriculum.EditFocus   `json:"focus"`
	Topics    []*curriculum.Topic    `json:"topics"`
	Settings  CourseSettingsResponse `json:"settings"`
	Expanded  map[string]bool        `json:"expanded"`
	Pending   int                    `json:"pending_uploads"`
}

type CourseSettingsResponse struct {
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	VideoURL    string `json:"video_url"`
	ImageStaged bool   `json:"image_staged"`
	VideoStaged bool   `json:"video_staged"`
}

type TopicRequest struct {
	Title   string `json:"title" validate:"required"`
	Summary string `json:"summary"`
}

// FocusRequest moves the single editing cursor.
type FocusRequest struct {
	Kind    string `json:"kind" validate:"required,oneof=none adding_topic editing_topic adding_item editing_item"`
	TopicID string `json:"topic_id"`
	ItemID  string `json:"item_id"`
	Item    string `json:"item_kind"`
}

// FileRefPayload carries either a staged key (raw attachment) or a
// resolved library pick. Exactly one of Key/URL should be set.
type FileRefPayload struct {
	Key  string `json:"key,omitempty"`
	Name string `json:"name,omitempty"`
	URL  string `json:"url,omitempty"`
	Size int64  `json:"size,omitempty"`
	Type string `json:"type,omitempty"`
}

type LinkPayload struct {
	Title string `json:"title"`
	URL   string `json:"url" validate:"required,url"`
}

type LessonPayload struct {
	Description string           `json:"description"`
	Video       *FileRefPayload  `json:"video"`
	Cover       *FileRefPayload  `json:"cover"`
	Hours       int              `json:"hours" validate:"min=0"`
	Minutes     int              `json:"minutes" validate:"min=0,max=59"`
	Seconds     int              `json:"seconds" validate:"min=0,max=59"`
	Files       []FileRefPayload `json:"files"`
	Links       []LinkPayload    `json:"links" validate:"dive"`
}

type QuestionPayload struct {
	ID            string   `json:"id"`
	Type          string   `json:"type" validate:"required,oneof=true_false multiple_choice"`
	Prompt        string   `json:"prompt" validate:"required"`
	Description   string   `json:"description"`
	CorrectAnswer string   `json:"correct_answer" validate:"required"`
	Options       []string `json:"options"`
}

type QuizPayload struct {
	Summary      string            `json:"summary"`
	Questions    []QuestionPayload `json:"questions" validate:"dive"`
	TimeLimit    int               `json:"time_limit" validate:"min=5,max=10"`
	MaxAttempts  int               `json:"max_attempts" validate:"min=1,max=2"`
	PassingGrade int               `json:"passing_grade" validate:"min=0,max=100"`
	HasCloseDate bool              `json:"has_close_date"`
	CloseDate    string            `json:"close_date"`
	CloseTime    string            `json:"close_time"`
}

type AssignmentPayload struct {
	Body                string           `json:"body"`
	Attachments         []FileRefPayload `json:"attachments"`
	TotalPoints         int              `json:"total_points" validate:"min=0"`
	MinPassPoints       int              `json:"min_pass_points" validate:"min=0"`
	MaxFiles            int              `json:"max_files" validate:"min=1"`
	MaxFileSizeMB       int              `json:"max_file_size_mb" validate:"min=1"`
	ResubmissionAllowed bool             `json:"resubmission_allowed"`
	MaxResubmissions    int              `json:"max_resubmissions"`
	HasCloseDate        bool             `json:"has_close_date"`
	CloseDate           string           `json:"close_date"`
	CloseTime           string           `json:"close_time"`
}

type LiveClassPayload struct {
	Description string `json:"description"`
	Date        string `json:"date" validate:"required"`
	Time        string `json:"time" validate:"required"`
	Duration    int    `json:"duration_minutes" validate:"min=1"`
	Platform    string `json:"platform" validate:"required,oneof=google_meet zoom other"`
	MeetingLink string `json:"meeting_link" validate:"required"`
}

// SaveItemRequest is one item editor's submit. Exactly the payload
// matching Kind must be present.
type SaveItemRequest struct {
	Kind          string `json:"kind" validate:"required,oneof=lesson quiz assignment live_class"`
	Title         string `json:"title" validate:"required"`
	HasUnlockDate bool   `json:"has_unlock_date"`
	UnlockDate    string `json:"unlock_date"`
	UnlockTime    string `json:"unlock_time"`

	Lesson     *LessonPayload     `json:"lesson,omitempty"`
	Quiz       *QuizPayload       `json:"quiz,omitempty"`
	Assignment *AssignmentPayload `json:"assignment,omitempty"`
	LiveClass  *LiveClassPayload  `json:"live_class,omitempty"`
}

// ReorderRequest is the pointer-drag drop: explicit source and target.
type ReorderRequest struct {
	From int `json:"from" validate:"min=0"`
	To   int `json:"to" validate:"min=0"`
}

// MoveStepRequest is the keyboard path: nudge one item up or down. Both
// paths funnel into the same reorder operation.
type MoveStepRequest struct {
	Direction string `json:"direction" validate:"required,oneof=up down"`
}

type CourseSettingsRequest struct {
	Description string          `json:"description"`
	Image       *FileRefPayload `json:"image"`
	Video       *FileRefPayload `json:"video"`
}

type StageAssetResponse struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Size int64  `json:"size"`
	Type string `json:"type"`
}

type SaveProgressResponse struct {
	Done  int    `json:"done"`
	Total int    `json:"total"`
	Name  string `json:"name,omitempty"`
}

type GenerateMeetLinkRequest struct {
	Title string `json:"title" validate:"required"`
	Date  string `json:"date" validate:"required"`
	Time  string `json:"time" validate:"required"`
}

type GenerateMeetLinkResponse struct {
	Link string `json:"link"`
}

func (r TopicRequest) Validate() error {
	return GetValidator().Struct(r)
}

func (r FocusRequest) Validate() error {
	return GetValidator().Struct(r)
}

func (r SaveItemRequest) Validate() error {
	return GetValidator().Struct(r)
}

func (r ReorderRequest) Validate() error {
	return GetValidator().Struct(r)
}

func (r MoveStepRequest) Validate() error {
	return GetValidator().Struct(r)
}

func (r CourseSettingsRequest) Validate() error {
	return GetValidator().Struct(r)
}

func (r GenerateMeetLinkRequest) Validate() error {
	return GetValidator().Struct(r)
}
