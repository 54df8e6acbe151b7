// Package middleware groups the HTTP middleware registered by the start command.
//
// # Components
//
//   - auth: API key validation (X-API-Key or Bearer token) protecting every route but swagger.
//   - rayid: Assigns each request a ray id, stored in the Fiber locals and echoed in the
//     X-Ray-ID response header, so logger.WithRayID can correlate log lines.
package middleware
