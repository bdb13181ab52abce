package accesslog

import (
	"io"

	"snake-server/core/logger"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
)

const (
	tagCategory = "category"
	tagProto    = "proto"
)

// Format renders one line per request:
//
//	[SERVER] 127.0.0.1 - "GET /index.html HTTP/1.1" 200 1024
const Format = "${" + tagCategory + "} ${ip} - \"${method} ${url} ${" + tagProto + "}\" ${status} ${bytesSent}\n"

// New returns the access log middleware. It must be registered first so the
// logged status is the final one, error handler included.
func New(out io.Writer, console *logger.Console) fiber.Handler {
	return fiberlogger.New(fiberlogger.Config{
		Format:        Format,
		Output:        out,
		DisableColors: !console.Colors(),
		CustomTags: map[string]fiberlogger.LogFunc{
			tagCategory: func(output fiberlogger.Buffer, _ *fiber.Ctx, _ *fiberlogger.Data, _ string) (int, error) {
				return output.WriteString(console.Tag())
			},
			tagProto: func(output fiberlogger.Buffer, c *fiber.Ctx, _ *fiberlogger.Data, _ string) (int, error) {
				return output.WriteString(protocol(c))
			},
		},
	})
}

func protocol(c *fiber.Ctx) string {
	return string(c.Request().Header.Protocol())
}
