// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the
// static file handler.
//
// # Components
//
//   - AccessLog: writes one colored "[SERVER] <addr> - <request line> <status>"
//     line per request, using Fiber's logger middleware with custom tags.
//   - Headers: adds the permissive CORS headers and disables client caching on
//     every response, whatever its status.
//   - RayID: generates a unique Request ID (RayID) for every incoming request,
//     injecting it into the context and response headers for tracing.
//
// Registration order matters: the access log goes first so it records the
// final status, the header middleware next so error responses carry the
// headers as well.
package middleware
