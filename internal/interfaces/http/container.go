package http

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"shop/internal/infrastructure/config"
	"shop/internal/infrastructure/ratelimit"
	"shop/internal/shared/logger"
)

const redisConnectTimeout = 3 * time.Second

// Container holds the infrastructure components, repositories, use cases and
// handlers, and releases what it opened in Shutdown.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	// nil when rate limiting is disabled or Redis is unreachable
	rateLimiter ratelimit.Limiter
}

// NewContainer creates a new Container with all dependencies wired together.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}

	c.repos = newRepositories(db, log)
	c.ucs = newUseCases(c.repos, log)

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	c.hdlrs = newHandlers(c.ucs, sqlDB, log)

	return c, nil
}

func (c *Container) initInfrastructure() error {
	rl := c.cfg.RateLimit
	if !rl.Enabled {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), redisConnectTimeout)
	defer cancel()

	client, err := ratelimit.NewRedisClient(ctx, &c.cfg.Redis)
	if err != nil {
		// the API stays usable without the limiter
		c.log.Warnw("rate limiting disabled, redis unavailable",
			"addr", c.cfg.Redis.GetAddr(),
			"error", err)
		return nil
	}

	c.redis = client
	c.rateLimiter = ratelimit.NewRedisRateLimiter(client, rl.Requests, time.Duration(rl.WindowSeconds)*time.Second)
	c.log.Infow("rate limiting enabled",
		"requests", rl.Requests,
		"window_seconds", rl.WindowSeconds)
	return nil
}

// Shutdown releases the connections opened by the container.
func (c *Container) Shutdown() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
}
