package logger

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// ZeroLoggerMiddleware logs requests and responses using zerolog
func ZeroLoggerMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		log.Debug().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Str("query", c.OriginalURL()).
			Msg("Incoming request")

		err := c.Next()

		duration := time.Since(start)
		event := log.Info()
		if err != nil {
			event = log.Error().Err(err)
		}
		event.
			Int("status", c.Response().StatusCode()).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Interface("request_id", c.Locals("requestid")).
			Dur("duration", duration).
			Msg("Request processed")

		return err
	}
}
