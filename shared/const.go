package shared

const (
	UserID   = "user_id"
	UserRole = "user_role"

	RoleAdmin = "admin"
	RoleTutor = "tutor"

	ItemKindLesson     = "lesson"
	ItemKindQuiz       = "quiz"
	ItemKindAssignment = "assignment"
	ItemKindLiveClass  = "live_class"

	QuestionTypeTrueFalse      = "true_false"
	QuestionTypeMultipleChoice = "multiple_choice"

	PlatformGoogleMeet = "google_meet"
	PlatformZoom       = "zoom"
	PlatformOther      = "other"

	CourseStatusDraft     = "draft"
	CourseStatusPublished = "published"
	CourseStatusArchived  = "archived"

	BroadcastStatusDraft = "draft"
	BroadcastStatusSent  = "sent"
)
