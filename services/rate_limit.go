package services

import (
	stdContext "context"
	"fmt"
	"sync"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"github.com/skyward-academy/curricula_api/shared"
)

// RateLimitService throttles sensitive endpoints with fixed windows
// counted in Redis, so limits hold across instances.
type RateLimitService struct {
	context.DefaultService

	configs map[string]*RateLimitConfig
	mutex   sync.RWMutex

	redisSvc *RedisService
}

type RateLimitConfig struct {
	EndpointType string
	MaxRequests  int64
	WindowSize   time.Duration
	Description  string
	IsActive     bool
}

const RATE_LIMIT_SVC = "rate_limit_svc"

func (svc RateLimitService) Id() string {
	return RATE_LIMIT_SVC
}

func (svc *RateLimitService) Configure(ctx *context.Context) error {
	svc.configs = make(map[string]*RateLimitConfig)
	return svc.DefaultService.Configure(ctx)
}

func (svc *RateLimitService) Start() error {
	svc.redisSvc = svc.Service(REDIS_SVC).(*RedisService)
	svc.initDefaultConfigs()
	return nil
}

func (svc *RateLimitService) initDefaultConfigs() {
	svc.mutex.Lock()
	defer svc.mutex.Unlock()

	svc.configs = map[string]*RateLimitConfig{
		"login": {
			EndpointType: "login",
			MaxRequests:  10,
			WindowSize:   15 * time.Minute,
			Description:  "Login attempts rate limit",
			IsActive:     true,
		},
		"register": {
			EndpointType: "register",
			MaxRequests:  5,
			WindowSize:   15 * time.Minute,
			Description:  "Registration rate limit",
			IsActive:     true,
		},
		"upload": {
			EndpointType: "upload",
			MaxRequests:  60,
			WindowSize:   time.Minute,
			Description:  "Asset staging rate limit",
			IsActive:     true,
		},
		"save": {
			EndpointType: "save",
			MaxRequests:  10,
			WindowSize:   time.Minute,
			Description:  "Curriculum save rate limit",
			IsActive:     true,
		},
	}
}

// Limit returns middleware enforcing the named config. Unknown or
// inactive configs pass everything through.
func (svc *RateLimitService) Limit(endpointType string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		svc.mutex.RLock()
		cfg, ok := svc.configs[endpointType]
		svc.mutex.RUnlock()
		if !ok || !cfg.IsActive {
			return c.Next()
		}

		key := fmt.Sprintf("ratelimit:%s:%s", endpointType, c.IP())
		count, err := svc.redisSvc.Incr(stdContext.Background(), key, cfg.WindowSize)
		if err != nil {
			// Redis being down shouldn't lock operators out.
			log.WithError(err).Warn("Rate limit counter unavailable")
			return c.Next()
		}

		if count > cfg.MaxRequests {
			return shared.ResponseJSON(c, fiber.StatusTooManyRequests, "Too many requests. Try again later.", nil)
		}

		return c.Next()
	}
}
