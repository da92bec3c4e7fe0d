package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/serviagenda/agenda-api/internal/infrastructure/cache"
)

// CacheMiddleware sirve respuestas GET 200 desde el cache, etiquetadas con
// tag para que las mutaciones del recurso invaliden el grupo. La clave
// incluye la query string completa (los listados dependen de sus filtros).
func CacheMiddleware(store *cache.Store, tag string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !store.Enabled() || c.Method() != fiber.MethodGet {
			return c.Next()
		}
		key := "cache:resp:" + c.OriginalURL()
		if body, ok := store.Get(c.Context(), key); ok {
			c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			c.Set("X-Cache", "HIT")
			return c.Send(body)
		}
		if err := c.Next(); err != nil {
			return err
		}
		if c.Response().StatusCode() == fiber.StatusOK {
			body := make([]byte, len(c.Response().Body()))
			copy(body, c.Response().Body())
			store.Set(c.Context(), tag, key, body)
		}
		c.Set("X-Cache", "MISS")
		return nil
	}
}
