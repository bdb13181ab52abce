package headers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"snake-server/core/middleware/headers"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertHeaders(t *testing.T, resp *http.Response) {
	t.Helper()
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET", resp.Header.Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "no-store, no-cache, must-revalidate", resp.Header.Get("Cache-Control"))
}

func TestNew(t *testing.T) {
	app := fiber.New()
	app.Use(headers.New())
	app.Get("/ok", func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderCacheControl, "max-age=3600")
		return c.SendString("ok")
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusInternalServerError, "boom")
	})
	app.Get("/reset", func(c *fiber.Ctx) error {
		c.Response().Reset()
		c.Status(fiber.StatusForbidden)
		return nil
	})

	tests := []struct {
		name   string
		method string
		path   string
		status int
	}{
		{"OK", "GET", "/ok", 200},
		{"NotFound", "GET", "/missing", 404},
		{"HandlerError", "GET", "/boom", 500},
		{"ResetResponse", "GET", "/reset", 403},
		{"MethodNotAllowed", "POST", "/ok", 405},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(tt.method, tt.path, nil))
			require.NoError(t, err)

			assert.Equal(t, tt.status, resp.StatusCode)
			assertHeaders(t, resp)
		})
	}
}
