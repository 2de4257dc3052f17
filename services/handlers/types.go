package handlers

import (
	"context"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"github.com/skyward-academy/curricula_api/dto"
	"github.com/skyward-academy/curricula_api/model"
)

type AuthServiceInterface interface {
	Register(req dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(req dto.LoginRequest) (*dto.LoginResponse, error)
	Profile(userID string) (*dto.ProfileResponse, error)
	RequiredAuth() fiber.Handler
	RequireRole(roles ...string) fiber.Handler
}

type BuilderServiceInterface interface {
	StartSession(courseID string) (*dto.BuilderSessionResponse, error)
	GetSession(sessionID string) (*dto.BuilderSessionResponse, error)
	CloseSession(sessionID string) error
	NextStage(sessionID string) (*dto.BuilderSessionResponse, error)
	BackStage(sessionID string) (*dto.BuilderSessionResponse, error)
	UpdateSettings(sessionID string, req dto.CourseSettingsRequest) (*dto.BuilderSessionResponse, error)
	AddTopic(sessionID string, req dto.TopicRequest) (*dto.BuilderSessionResponse, error)
	UpdateTopic(sessionID, topicID string, req dto.TopicRequest) (*dto.BuilderSessionResponse, error)
	DuplicateTopic(sessionID, topicID string) (*dto.BuilderSessionResponse, error)
	DeleteTopic(sessionID, topicID string) (*dto.BuilderSessionResponse, error)
	ToggleExpanded(sessionID, topicID string) (*dto.BuilderSessionResponse, error)
	SetFocus(sessionID string, req dto.FocusRequest) (*dto.BuilderSessionResponse, error)
	SaveItem(sessionID, topicID string, req dto.SaveItemRequest) (*dto.BuilderSessionResponse, error)
	DuplicateItem(sessionID, topicID, itemID string) (*dto.BuilderSessionResponse, error)
	DeleteItem(sessionID, topicID, itemID string) (*dto.BuilderSessionResponse, error)
	ReorderItem(sessionID, topicID string, req dto.ReorderRequest) (*dto.BuilderSessionResponse, error)
	MoveItemStep(sessionID, topicID, itemID string, req dto.MoveStepRequest) (*dto.BuilderSessionResponse, error)
	StageAsset(sessionID, kind string, file *multipart.FileHeader) (*dto.StageAssetResponse, error)
	DiscardAsset(sessionID, key string) error
	Save(ctx context.Context, sessionID string) (*dto.BuilderSessionResponse, error)
	Progress(sessionID string) (*dto.SaveProgressResponse, error)
}

type CourseServiceInterface interface {
	GetCourse(id string) (*model.Course, error)
	ListCourses(req dto.CourseSearchRequest) ([]model.Course, error)
	CreateCourse(tutorID string, req dto.CreateCourseRequest) (*model.Course, error)
	UpdateCourse(id string, req dto.UpdateCourseRequest) (*model.Course, error)
	DeleteCourse(id string) error
}

type AcademyServiceInterface interface {
	GetCohort(id string) (*model.Cohort, error)
	ListCohorts(req dto.ListRequest) ([]model.Cohort, *dto.ListMeta, error)
	CreateCohort(req dto.CohortRequest) (*model.Cohort, error)
	UpdateCohort(id string, req dto.CohortRequest) (*model.Cohort, error)
	DeleteCohort(id string) error
	CountCohortStudents(cohortID string) (int64, error)

	GetStudent(id string) (*model.Student, error)
	ListStudents(req dto.ListRequest, cohortID string) ([]model.Student, *dto.ListMeta, error)
	CreateStudent(req dto.StudentRequest) (*model.Student, error)
	UpdateStudent(id string, req dto.StudentRequest) (*model.Student, error)
	DeleteStudent(id string) error

	GetTutor(id string) (*model.Tutor, error)
	ListTutors(req dto.ListRequest) ([]model.Tutor, *dto.ListMeta, error)
	CreateTutor(req dto.TutorRequest) (*model.Tutor, error)
	UpdateTutor(id string, req dto.TutorRequest) (*model.Tutor, error)
	DeleteTutor(id string) error

	GetBroadcast(id string) (*model.Broadcast, error)
	ListBroadcasts(req dto.ListRequest) ([]model.Broadcast, *dto.ListMeta, error)
	CreateBroadcast(req dto.BroadcastRequest) (*model.Broadcast, error)
	SendBroadcast(id string) (*model.Broadcast, int, error)
	DeleteBroadcast(id string) error
}

type LibraryServiceInterface interface {
	CreateFolder(req dto.FolderRequest) (*model.MediaFolder, error)
	DeleteFolder(id string) error
	Browse(folderID string) (*dto.LibraryBrowseResponse, error)
	UploadFile(ctx context.Context, folderID string, file *multipart.FileHeader) (*dto.MediaFileResponse, error)
	GetFile(id string) (*model.MediaFile, error)
	DeleteFile(id string) error
}

type MeetServiceInterface interface {
	Connected(userID string) (bool, error)
	GenerateLink(userID, title, date, timeOfDay string) (string, error)
}
