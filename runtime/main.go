package main

import (
	"github.com/skyward-academy/curricula_api/services"

	"github.com/alphabatem/common/context"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// @title Curricula API
// @version 1.0
// @description Admin console backend for the Skyward Academy course curriculum builder.
// @BasePath /
func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("No .env file loaded")
	}

	ctx, err := context.NewCtx(
		&services.PostgresService{},
		&services.RedisService{},
		&services.MinIOService{},
		&services.MonitoringService{},

		&services.JWTService{},
		&services.AuthService{},
		&services.RateLimitService{},

		&services.EmailService{},
		&services.MeetService{},

		&services.CourseService{},
		&services.AcademyService{},
		&services.LibraryService{},
		&services.UploadService{},
		&services.BuilderService{},

		&services.HttpService{},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to configure services")
		return
	}

	if err = ctx.Run(); err != nil {
		log.Fatal().Err(err).Msg("Service runtime exited")
		return
	}
}
