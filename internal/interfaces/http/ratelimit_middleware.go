package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/serviagenda/agenda-api/internal/application/dto"
	"github.com/serviagenda/agenda-api/pkg/config"
)

// LoginRateLimit limita intentos de login por IP con ventana fija sobre
// Redis (INCR + EXPIRE). rdb nil => sin límite.
func LoginRateLimit(rdb *redis.Client, cfg config.LoginRateConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if rdb == nil {
			return c.Next()
		}
		key := "ratelimit:login:" + c.IP()
		count, err := rdb.Incr(c.Context(), key).Result()
		if err != nil {
			// Redis caído no bloquea el login
			return c.Next()
		}
		if count == 1 {
			_ = rdb.Expire(c.Context(), key, cfg.Window).Err()
		}
		if count > int64(cfg.MaxAttempts) {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{Code: "RATE_LIMITED", Message: "Demasiados intentos de login, intente más tarde"})
		}
		return c.Next()
	}
}
