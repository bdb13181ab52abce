package browser_test

import (
	"bytes"
	"errors"
	"testing"

	"snake-server/core/browser"

	sysbrowser "github.com/pkg/browser"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLaunch(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		var opened string

		err := browser.Launch(browser.OpenerFunc(func(url string) error {
			opened = url
			return nil
		}), "http://localhost:8000", zap.New(core))

		assert.NoError(t, err)
		assert.Equal(t, "http://localhost:8000", opened)
		assert.Zero(t, logs.Len())
	})

	t.Run("ErrorIsLogged", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)

		err := browser.Launch(browser.OpenerFunc(func(string) error {
			return errors.New("no display")
		}), "http://localhost:8000", zap.New(core))

		assert.ErrorContains(t, err, "no display")
		entries := logs.FilterMessage("Could not open browser").All()
		assert.Len(t, entries, 1)
		assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	})

	t.Run("PanicIsRecovered", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)

		var err error
		assert.NotPanics(t, func() {
			err = browser.Launch(browser.OpenerFunc(func(string) error {
				panic("exec missing")
			}), "http://localhost:8000", zap.New(core))
		})

		assert.ErrorContains(t, err, "exec missing")
		assert.Equal(t, 1, logs.Len())
	})

	t.Run("Nop", func(t *testing.T) {
		assert.NoError(t, browser.Launch(browser.Nop{}, "http://localhost:8000", zap.NewNop()))
	})
}

func TestSystem_ZeroValueLeavesHelperOutput(t *testing.T) {
	var out bytes.Buffer
	prevOut, prevErr := sysbrowser.Stdout, sysbrowser.Stderr
	sysbrowser.Stdout, sysbrowser.Stderr = &out, &out
	defer func() { sysbrowser.Stdout, sysbrowser.Stderr = prevOut, prevErr }()

	var opener browser.Opener = browser.System{}

	assert.NotNil(t, opener)
	assert.Same(t, &out, sysbrowser.Stdout)
	assert.Same(t, &out, sysbrowser.Stderr)
}
