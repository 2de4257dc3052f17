package services

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	log "github.com/sirupsen/logrus"

	"github.com/skyward-academy/curricula_api/services/handlers"
	"github.com/skyward-academy/curricula_api/shared"
)

type HttpService struct {
	context.DefaultService

	authSvc      *AuthService
	builderSvc   *BuilderService
	courseSvc    *CourseService
	academySvc   *AcademyService
	librarySvc   *LibraryService
	meetSvc      *MeetService
	rateLimitSvc *RateLimitService
	monSvc       *MonitoringService

	port   int
	server *fiber.App
}

const HTTP_SVC = "http_svc"

func (svc HttpService) Id() string {
	return HTTP_SVC
}

func (svc *HttpService) Configure(ctx *context.Context) error {
	if port := os.Getenv("HTTP_PORT"); port != "" {
		var err error
		if svc.port, err = strconv.Atoi(port); err != nil {
			return err
		}
	} else {
		svc.port = 8000
	}

	return svc.DefaultService.Configure(ctx)
}

func (svc *HttpService) Start() error {
	svc.authSvc = svc.Service(AUTH_SVC).(*AuthService)
	svc.builderSvc = svc.Service(BUILDER_SVC).(*BuilderService)
	svc.courseSvc = svc.Service(COURSE_SVC).(*CourseService)
	svc.academySvc = svc.Service(ACADEMY_SVC).(*AcademyService)
	svc.librarySvc = svc.Service(LIBRARY_SVC).(*LibraryService)
	svc.meetSvc = svc.Service(MEET_SVC).(*MeetService)
	svc.rateLimitSvc = svc.Service(RATE_LIMIT_SVC).(*RateLimitService)
	svc.monSvc = svc.Service(MONITORING_SVC).(*MonitoringService)

	app := fiber.New(fiber.Config{
		AppName:      "curricula_api",
		BodyLimit:    120 * 1024 * 1024,
		ErrorHandler: svc.handleError,
	})

	app.Use(recover.New())
	app.Use(svc.monSvc.Middleware())

	if os.Getenv("LOG_LEVEL") == "TRACE" {
		app.Use(logger.New())
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	app.Get("/ping", svc.ping)
	app.Get("/swagger/*", swagger.HandlerDefault)

	svc.registerRoutes(app)

	app.Use(func(c *fiber.Ctx) error {
		return shared.ResponseNotFound(c)
	})

	svc.server = app

	log.Printf("HTTP server listening on :%d", svc.port)
	return app.Listen(fmt.Sprintf(":%v", svc.port))
}

func (svc *HttpService) registerRoutes(app *fiber.App) {
	authHandler := handlers.NewAuthHandler(svc.authSvc)
	builderHandler := handlers.NewBuilderHandler(svc.builderSvc, svc.meetSvc)
	courseHandler := handlers.NewCourseHandler(svc.courseSvc)
	academyHandler := handlers.NewAcademyHandler(svc.academySvc)
	libraryHandler := handlers.NewLibraryHandler(svc.librarySvc)

	v1 := app.Group("/api/v1")
	v1.Get("/ping", svc.ping)

	// Public auth endpoints, rate limited.
	v1.Post("/register", svc.rateLimitSvc.Limit("register"), authHandler.Register)
	v1.Post("/login", svc.rateLimitSvc.Limit("login"), authHandler.Login)

	// Everything past here needs a valid token.
	auth := v1.Group("", svc.authSvc.RequiredAuth())
	auth.Get("/profile", authHandler.Profile)

	// Courses.
	courses := auth.Group("/courses")
	courses.Get("/", courseHandler.ListCourses)
	courses.Post("/", courseHandler.CreateCourse)
	courses.Get("/:courseId", courseHandler.GetCourse)
	courses.Put("/:courseId", courseHandler.UpdateCourse)
	courses.Delete("/:courseId", courseHandler.DeleteCourse)
	courses.Post("/:courseId/builder", builderHandler.StartSession)

	// Builder sessions.
	builder := auth.Group("/builder")
	builder.Post("/meet-link", builderHandler.GenerateMeetLink)
	builder.Get("/:sessionId", builderHandler.GetSession)
	builder.Delete("/:sessionId", builderHandler.CloseSession)
	builder.Post("/:sessionId/next", builderHandler.NextStage)
	builder.Post("/:sessionId/back", builderHandler.BackStage)
	builder.Put("/:sessionId/settings", builderHandler.UpdateSettings)
	builder.Put("/:sessionId/focus", builderHandler.SetFocus)
	builder.Post("/:sessionId/assets", svc.rateLimitSvc.Limit("upload"), builderHandler.StageAsset)
	builder.Delete("/:sessionId/assets/:key", builderHandler.DiscardAsset)
	builder.Post("/:sessionId/save", svc.rateLimitSvc.Limit("save"), builderHandler.Save)
	builder.Get("/:sessionId/progress", builderHandler.Progress)

	builder.Post("/:sessionId/topics", builderHandler.AddTopic)
	builder.Put("/:sessionId/topics/:topicId", builderHandler.UpdateTopic)
	builder.Delete("/:sessionId/topics/:topicId", builderHandler.DeleteTopic)
	builder.Post("/:sessionId/topics/:topicId/duplicate", builderHandler.DuplicateTopic)
	builder.Post("/:sessionId/topics/:topicId/toggle", builderHandler.ToggleExpanded)
	builder.Put("/:sessionId/topics/:topicId/reorder", builderHandler.ReorderItem)
	builder.Post("/:sessionId/topics/:topicId/items", builderHandler.SaveItem)
	builder.Delete("/:sessionId/topics/:topicId/items/:itemId", builderHandler.DeleteItem)
	builder.Post("/:sessionId/topics/:topicId/items/:itemId/duplicate", builderHandler.DuplicateItem)
	builder.Put("/:sessionId/topics/:topicId/items/:itemId/move", builderHandler.MoveItemStep)

	// Academy.
	cohorts := auth.Group("/cohorts")
	cohorts.Get("/", academyHandler.ListCohorts)
	cohorts.Post("/", academyHandler.CreateCohort)
	cohorts.Get("/:cohortId", academyHandler.GetCohort)
	cohorts.Put("/:cohortId", academyHandler.UpdateCohort)
	cohorts.Delete("/:cohortId", academyHandler.DeleteCohort)

	students := auth.Group("/students")
	students.Get("/", academyHandler.ListStudents)
	students.Post("/", academyHandler.CreateStudent)
	students.Put("/:studentId", academyHandler.UpdateStudent)
	students.Delete("/:studentId", academyHandler.DeleteStudent)

	tutors := auth.Group("/tutors")
	tutors.Get("/", academyHandler.ListTutors)
	tutors.Post("/", academyHandler.CreateTutor)
	tutors.Put("/:tutorId", academyHandler.UpdateTutor)
	tutors.Delete("/:tutorId", academyHandler.DeleteTutor)

	broadcasts := auth.Group("/broadcasts")
	broadcasts.Get("/", academyHandler.ListBroadcasts)
	broadcasts.Post("/", academyHandler.CreateBroadcast)
	broadcasts.Post("/:broadcastId/send", academyHandler.SendBroadcast)
	broadcasts.Delete("/:broadcastId", academyHandler.DeleteBroadcast)

	// Media library. Uploads and deletes are admin or tutor work alike,
	// so no extra role gate beyond auth.
	library := auth.Group("/library")
	library.Get("/", libraryHandler.Browse)
	library.Post("/folders", libraryHandler.CreateFolder)
	library.Delete("/folders/:folderId", libraryHandler.DeleteFolder)
	library.Post("/files", svc.rateLimitSvc.Limit("upload"), libraryHandler.UploadFile)
	library.Get("/files/:fileId", libraryHandler.GetFile)
	library.Delete("/files/:fileId", libraryHandler.DeleteFile)
}

func (svc *HttpService) Shutdown() {
	if svc.server != nil {
		_ = svc.server.Shutdown()
	}
}

// @Summary Ping
// @Description This endpoint checks the health of the service
// @Tags health
// @Accept  json
// @Produce json
// @Success 200 {object} shared.Response{data=string}
// @Router /ping [get]
func (svc *HttpService) ping(c *fiber.Ctx) error {
	c.Set("Cache-Control", "max-age=10")
	return shared.ResponseJSON(c, fiber.StatusOK, "Success", "pong")
}

// handleError renders AppErrors with their status; anything else is a
// 500 with the detail kept out of the response body.
func (svc *HttpService) handleError(c *fiber.Ctx, err error) error {
	if appErr, ok := shared.GetAppError(err); ok {
		return shared.ResponseJSON(c, appErr.StatusCode, appErr.Message, appErr.Data)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return shared.ResponseJSON(c, fiberErr.Code, fiberErr.Message, nil)
	}

	return shared.ResponseInternalError(c, err)
}
