package browser

import (
	"fmt"
	"io"
	"sync"

	sysbrowser "github.com/pkg/browser"
	"go.uber.org/zap"
)

// Opener opens a URL in a web browser.
type Opener interface {
	Open(url string) error
}

// OpenerFunc adapts a function to the Opener interface.
type OpenerFunc func(url string) error

// Open calls f(url).
func (f OpenerFunc) Open(url string) error {
	return f(url)
}

// System opens URLs with the host's default browser (xdg-open, open or
// rundll32 depending on the platform). The zero value is ready to use.
type System struct{}

var quietHelper sync.Once

// Open launches the default browser on url. Output of the launched helper
// process is discarded so it never interleaves with the access log.
func (System) Open(url string) error {
	quietHelper.Do(func() {
		sysbrowser.Stdout = io.Discard
		sysbrowser.Stderr = io.Discard
	})
	return sysbrowser.OpenURL(url)
}

// Nop never opens anything.
type Nop struct{}

// Open does nothing.
func (Nop) Open(string) error { return nil }

// Launch opens url with o. Failures, including panics inside the opener, are
// logged and swallowed: a missing browser never stops the server.
func Launch(o Opener, url string, logger *zap.Logger) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("browser opener panicked: %v", r)
		}
		if err != nil {
			logger.Warn("Could not open browser", zap.String("url", url), zap.Error(err))
		}
	}()

	return o.Open(url)
}
