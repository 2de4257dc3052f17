package services

import (
	"strings"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/skyward-academy/curricula_api/dto"
	"github.com/skyward-academy/curricula_api/model"
	"github.com/skyward-academy/curricula_api/services/repositories"
	"github.com/skyward-academy/curricula_api/shared"
)

// AuthService handles operator accounts: registration, login, and the
// request middleware that guards the console's routes.
type AuthService struct {
	context.DefaultService
	sqlSvc *PostgresService
	jwtSvc *JWTService
	repo   *repositories.UserRepository
}

const AUTH_SVC = "auth_svc"

func (svc AuthService) Id() string {
	return AUTH_SVC
}

func (svc *AuthService) Start() error {
	svc.sqlSvc = svc.Service(POSTGRES_SVC).(*PostgresService)
	svc.jwtSvc = svc.Service(JWT_SVC).(*JWTService)
	svc.repo = repositories.NewUserRepository(svc.sqlSvc.Db())
	return nil
}

// ==================== ACCOUNTS ====================

func (svc *AuthService) Register(req dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if _, err := svc.repo.GetUserByEmail(strings.ToLower(req.Email)); err == nil {
		return nil, shared.NewConflictError(nil, "An account with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to hash password")
	}

	role := req.Role
	if role == "" {
		role = shared.RoleTutor
	}

	user, err := svc.repo.CreateUser(&model.User{
		Email:    strings.ToLower(req.Email),
		Username: req.Username,
		Password: string(hash),
		Role:     role,
	})
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}

	log.Printf("Registered user %s (%s)", user.ID, user.Email)
	return &dto.RegisterResponse{UserID: user.ID, Email: user.Email}, nil
}

func (svc *AuthService) Login(req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := svc.repo.GetUserByEmail(strings.ToLower(req.Email))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, shared.NewUnauthorizedError(nil, "Invalid email or password")
		}
		return nil, svc.sqlSvc.HandleError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, shared.NewUnauthorizedError(nil, "Invalid email or password")
	}

	token, expiresAt, err := svc.jwtSvc.ToJWT(user.ID, user.Role)
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to issue token")
	}

	if err := svc.repo.TouchLastLogin(user.ID); err != nil {
		log.WithError(err).Warn("Failed to record login time")
	}

	return &dto.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		UserID:      user.ID,
		Role:        user.Role,
	}, nil
}

func (svc *AuthService) GetUser(id string) (*model.User, error) {
	user, err := svc.repo.GetUser(id)
	if err != nil {
		return nil, svc.sqlSvc.HandleError(err)
	}
	return user, nil
}

func (svc *AuthService) Profile(id string) (*dto.ProfileResponse, error) {
	user, err := svc.GetUser(id)
	if err != nil {
		return nil, err
	}
	return &dto.ProfileResponse{
		UserID:        user.ID,
		Email:         user.Email,
		Username:      user.Username,
		Role:          user.Role,
		MeetConnected: user.MeetAccount != "",
		LastLoginAt:   user.LastLoginAt,
		JoinedAt:      user.CreatedAt,
	}, nil
}

// ==================== MIDDLEWARE ====================

// RequiredAuth verifies the bearer token and stores the caller's
// identity in request locals.
func (svc *AuthService) RequiredAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, err := svc.jwtSvc.ExtractTokenFromHeader(c.Get(fiber.HeaderAuthorization))
		if err != nil {
			return shared.ResponseJSON(c, fiber.StatusUnauthorized, "Authorization required", nil)
		}

		userID, role, err := svc.jwtSvc.VerifyJWTToken(token)
		if err != nil {
			return shared.ResponseJSON(c, fiber.StatusUnauthorized, "Invalid or expired token", nil)
		}

		c.Locals(shared.UserID, userID)
		c.Locals(shared.UserRole, role)
		return c.Next()
	}
}

// RequireRole gates a route group on the caller's role.
func (svc *AuthService) RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(shared.UserRole).(string)
		for _, r := range roles {
			if role == r {
				return c.Next()
			}
		}
		return shared.ResponseJSON(c, fiber.StatusForbidden, "Insufficient permissions", nil)
	}
}
