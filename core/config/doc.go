// Package config provides configuration management for the server.
//
// It utilizes godotenv and Viper for loading settings from an optional .env
// file and environment variables. Defaults come from the `default` struct tags.
//
// # Configuration Structure
//
//   - Server: browser auto-open and shutdown timeout (SERVER_OPEN_BROWSER,
//     SERVER_SHUTDOWN_TIMEOUT_SECONDS). Port 8000, host 0.0.0.0 and the root
//     directory are fixed and cannot be overridden.
//   - Log: level, format and colors (LOG_LEVEL, LOG_FORMAT, LOG_COLOR)
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.URL())
package config
