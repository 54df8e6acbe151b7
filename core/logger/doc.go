// Package logger builds the zap logger shared by commands, services and handlers.
//
// Level selects the minimum severity; debug also switches to zap's development preset.
// Format chooses json (default) or console encoding. WithRayID tags a logger with the
// request ray id stored by the rayid middleware, so every line of one request correlates.
//
// # Usage
//
//	log, _ := logger.New(&cfg.Log)
//	log.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
