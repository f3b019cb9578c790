package middleware

import (
	"errors"
	"time"

	"contact-directory/internal/metrics"

	"github.com/gofiber/fiber/v2"
)

// Metrics records request count and latency per matched route.
// Routes are labelled by pattern (/contacts/:id), never by raw path.
func Metrics(m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		m.ObserveHTTP(c.Method(), c.Route().Path, status, time.Since(start))
		return err
	}
}
