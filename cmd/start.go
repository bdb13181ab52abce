package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"snake-server/core/browser"
	"snake-server/core/config"
	"snake-server/core/loader"
	"snake-server/core/logger"
	"snake-server/core/middleware/accesslog"
	"snake-server/core/middleware/headers"
	"snake-server/core/middleware/rayid"
	"snake-server/core/server"
	"snake-server/feature/static"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const bannerTitle = "🐍 Snake Game Server"

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the game asset server",
	Long:  `Binds port 8000, serves the program directory and runs until interrupted.`,
	Args:  cobra.NoArgs,
	RunE:  runStart,
}

func init() {
	RootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, _ []string) error {
	// 1. Load Configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// 2. Initialize Logger
	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logg.Sync()
	zap.ReplaceGlobals(logg)

	console := logger.NewConsole(cmd.OutOrStdout(), cfg.Log.Color)

	var opener browser.Opener = browser.Nop{}
	if cfg.Server.OpenBrowser {
		opener = browser.System{}
	}

	// 3. Stop on Ctrl+C
	ctx, stop := interruptContext(cmd.Context(), signal.NotifyContext)
	defer stop()

	return run(ctx, cfg, logg, console, opener)
}

type notifyFunc func(parent context.Context, signals ...os.Signal) (context.Context, context.CancelFunc)

// interruptContext is cancelled by the first SIGINT or SIGTERM. Signal capture
// is released as soon as that happens, so a second Ctrl+C during the shutdown
// window gets the default behavior and kills the process.
func interruptContext(parent context.Context, notify notifyFunc) (context.Context, context.CancelFunc) {
	ctx, stop := notify(parent, os.Interrupt, syscall.SIGTERM)
	context.AfterFunc(ctx, stop)
	return ctx, stop
}

// run binds the listener, announces the server, opens the browser and serves
// until ctx is cancelled. A bind failure is returned before anything is printed.
func run(ctx context.Context, cfg *config.Config, logg *zap.Logger, console *logger.Console, opener browser.Opener) error {
	app, err := newApp(cfg, logg, console)
	if err != nil {
		return err
	}

	srv := server.New(cfg.Server, app, logg)
	if err := srv.Listen(); err != nil {
		return err
	}

	console.Banner(bannerTitle, cfg.Server.URL(), cfg.Server.Root)
	go browser.Launch(opener, cfg.Server.URL(), logg)

	if err := srv.Serve(ctx); err != nil {
		return err
	}

	console.Stopped()
	return nil
}

// newApp assembles the middleware chain and mounts the static feature.
func newApp(cfg *config.Config, logg *zap.Logger, console *logger.Console) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true, // We print our own banner
	})

	// 1. Access log (outermost, records the final status)
	app.Use(accesslog.New(console.Writer(), console))

	// 2. CORS and no-cache headers
	app.Use(headers.New())

	// 3. RayID
	app.Use(rayid.New())

	// 4. Request tracing for debug level
	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		l.Debug("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		if err != nil {
			l.Debug("Request error", zap.Error(err))
		}
		return err
	})

	// 5. Load Features
	mgr := loader.NewManager(logg)
	mgr.Register(static.NewFeature(cfg.Server.Root, logg))
	if err := mgr.LoadAll(app); err != nil {
		return nil, err
	}

	return app, nil
}
