package headers

import (
	"github.com/gofiber/fiber/v2"
)

const (
	AllowOrigin  = "*"
	AllowMethods = "GET"
	CacheControl = "no-store, no-cache, must-revalidate"
)

// New returns a middleware that adds the CORS and no-cache headers to every
// response. They are applied after the rest of the chain has run, so static
// handler resets and error responses keep them too.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		c.Set(fiber.HeaderAccessControlAllowOrigin, AllowOrigin)
		c.Set(fiber.HeaderAccessControlAllowMethods, AllowMethods)
		c.Set(fiber.HeaderCacheControl, CacheControl)

		return err
	}
}
