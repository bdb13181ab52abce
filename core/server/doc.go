// Package server holds the HTTP server configuration and the listener lifecycle.
//
// The port and bind host are compiled-in constants and the root directory is
// the directory of the running executable; none of them can be changed through
// configuration. Only ambient settings (browser auto-open, shutdown timeout)
// are read from the environment by core/config.
//
// # Lifecycle
//
// A Server moves through NotStarted → Listening → Stopped:
//
//   - Listen binds the TCP socket. A busy port or missing permission returns a
//     *BindError and the server goes directly to Stopped.
//   - Serve runs the fiber app on the bound listener until its context is
//     cancelled, then shuts down within Config.ShutdownTimeout and releases the
//     socket.
//
// # Usage
//
//	srv := server.New(cfg.Server, app, logg)
//	if err := srv.Listen(); err != nil {
//	    return err
//	}
//	err := srv.Serve(ctx)
package server
