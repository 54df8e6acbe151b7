// Package loader provides the feature registry the HTTP server is assembled from.
//
// Each feature package (cost, tracker, integrity) exposes a NewFeature constructor returning a
// value that satisfies Feature:
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// The Manager registers features and loads the enabled ones in registration order with
// LoadAll, which fails fast on the first error or on a duplicate name.
package loader
