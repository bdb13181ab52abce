// Package logger provides a structured logging facility based on Zap, plus the
// colored console output shown to the developer running the server.
//
// # Structured logs
//
// New builds a zap logger from Config. A "debug" level selects the development
// preset, everything else the production preset; the "console" format uses
// capital (optionally colored) level names. Records go to stderr.
//
// WithRayID extracts the RayID stored by the rayid middleware from a Fiber
// context and attaches it to the log entry, so that all records for a request
// can be correlated.
//
// # Console
//
// Console writes to stdout with fatih/color: the start-up banner, [INFO]
// notices and the [SERVER] tag used by the access log. Colors can be turned
// off through Config.Color.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("Server started")
//
//	console := logger.NewConsole(os.Stdout, true)
//	console.Banner("Snake Game Server", "http://localhost:8000", root)
package logger
