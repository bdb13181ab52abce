package server_test

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"strconv"
	"testing"
	"time"

	"snake-server/core/server"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// freePort reserves an ephemeral port and releases it for the caller.
func freePort(t *testing.T) int {
	t.Helper()
	ln, err := net.Listen("tcp4", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())
	return port
}

func testConfig(port int) server.Config {
	return server.Config{
		Port:                   port,
		Host:                   "127.0.0.1",
		Root:                   ".",
		ShutdownTimeoutSeconds: 2,
	}
}

func newApp() *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})
	return app
}

func TestServer_ListenBusyPort(t *testing.T) {
	busy, err := net.Listen("tcp4", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()
	port := busy.Addr().(*net.TCPAddr).Port

	srv := server.New(testConfig(port), newApp(), zap.NewNop())
	err = srv.Listen()

	var bindErr *server.BindError
	require.ErrorAs(t, err, &bindErr)
	assert.Equal(t, "127.0.0.1:"+strconv.Itoa(port), bindErr.Addr)
	assert.NotNil(t, errors.Unwrap(err))
	assert.Equal(t, server.StateStopped, srv.State())
}

func TestServer_Lifecycle(t *testing.T) {
	port := freePort(t)
	srv := server.New(testConfig(port), newApp(), zap.NewNop())
	assert.Equal(t, server.StateNotStarted, srv.State())

	require.NoError(t, srv.Listen())
	assert.Equal(t, server.StateListening, srv.State())
	assert.Error(t, srv.Listen(), "second Listen must fail")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx) }()

	client := &http.Client{Transport: &http.Transport{DisableKeepAlives: true}}
	var resp *http.Response
	require.Eventually(t, func() bool {
		var err error
		resp, err = client.Get("http://" + srv.Addr() + "/ping")
		return err == nil
	}, 2*time.Second, 20*time.Millisecond)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, "pong", string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancellation")
	}
	assert.Equal(t, server.StateStopped, srv.State())

	// The port is released and can be bound again immediately.
	ln, err := net.Listen("tcp4", "127.0.0.1:"+strconv.Itoa(port))
	require.NoError(t, err)
	ln.Close()
}

func TestServer_CancelBeforeServe(t *testing.T) {
	srv := server.New(testConfig(freePort(t)), newApp(), zap.NewNop())
	require.NoError(t, srv.Listen())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx) }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return for a cancelled context")
	}
}

func TestServer_ServeWithoutListen(t *testing.T) {
	srv := server.New(testConfig(freePort(t)), newApp(), zap.NewNop())

	assert.Error(t, srv.Serve(context.Background()))
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "not_started", server.StateNotStarted.String())
	assert.Equal(t, "listening", server.StateListening.String())
	assert.Equal(t, "stopped", server.StateStopped.String())
	assert.Equal(t, "state(9)", server.State(9).String())
}
