package server

import (
	"fmt"
	"time"
)

const (
	// Port is the fixed TCP port the server binds.
	Port = 8000
	// Host is the fixed bind address (all IPv4 interfaces).
	Host = "0.0.0.0"
)

// Config holds configuration for the HTTP server.
//
// Port, Host and Root are fixed for the process lifetime and are never read
// from the environment; see Defaults.
type Config struct {
	// Port is the port where the server will listen.
	Port int `mapstructure:"-"`
	// Host is the interface address the listener binds to.
	Host string `mapstructure:"-"`
	// Root is the directory whose files are served.
	Root string `mapstructure:"-"`
	// OpenBrowser opens the served URL in the default browser after start-up.
	OpenBrowser bool `mapstructure:"open_browser" default:"true"`
	// ShutdownTimeoutSeconds bounds how long a graceful shutdown may take.
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" default:"5"`
}

// Defaults fills the fixed fields with the compiled-in port and host and the
// given root directory.
func (c Config) Defaults(root string) Config {
	c.Port = Port
	c.Host = Host
	c.Root = root
	return c
}

// Addr returns the listen address (host:port).
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// URL returns the address a local browser should open.
func (c Config) URL() string {
	return fmt.Sprintf("http://localhost:%d", c.Port)
}

// ShutdownTimeout returns the graceful shutdown bound, defaulting to 5s.
func (c Config) ShutdownTimeout() time.Duration {
	if c.ShutdownTimeoutSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}
