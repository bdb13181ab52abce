// Package browser opens the served URL in the developer's web browser.
//
// The Opener interface isolates the OS integration so tests never spawn a
// real browser; System wraps github.com/pkg/browser and Launch swallows every
// failure (headless hosts, missing xdg-open) after logging it.
package browser
