// Package server holds the HTTP server configuration.
//
// The cobra start command builds the Fiber application; this package only defines the
// settings it reads: the listen port, the API key checked by the auth middleware and the
// request read timeout.
package server
