package static

import (
	"net/http"

	"snake-server/core/server"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"go.uber.org/zap"
)

// IndexFile is served for directory requests when present.
const IndexFile = "index.html"

// Feature serves the files of a root directory on "/".
type Feature struct {
	root   string
	logger *zap.Logger
}

// NewFeature creates the static file feature for root.
func NewFeature(root string, logger *zap.Logger) *Feature {
	return &Feature{
		root:   root,
		logger: logger,
	}
}

// Name returns the feature name.
func (f *Feature) Name() string {
	return "static"
}

// IsEnabled reports whether a root directory was configured.
func (f *Feature) IsEnabled() bool {
	return f.root != ""
}

// Load mounts the root directory. Files are opened on every request, so edits
// and deletions are visible immediately. Missing files fall through to
// fiber's 404; directories without an index are listed.
func (f *Feature) Load(app fiber.Router) error {
	if err := server.CheckRoot(f.root); err != nil {
		return err
	}

	app.Use(filesystem.New(filesystem.Config{
		Root:   http.Dir(f.root),
		Index:  IndexFile,
		Browse: true,
	}))

	f.logger.Debug("Serving static files", zap.String("root", f.root))
	return nil
}
