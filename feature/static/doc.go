// Package static serves the game's asset directory.
//
// The feature mounts fiber's filesystem middleware over the root directory,
// with index.html as the directory index and directory listing enabled for
// folders without one. Files are opened on every request, so an asset edited
// or deleted on disk is reflected by the next request. Paths are cleaned
// before lookup and never leave the root. Missing files and methods other
// than GET/HEAD fall through to the router and end as 404.
package static
