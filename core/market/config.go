package market

import "time"

// Config holds configuration for the market price oracle.
type Config struct {
	// BaseURL is the Universalis API root.
	BaseURL string `mapstructure:"base_url" default:"https://universalis.app"`
	// DataCenter is the data center (or world) whose listings are searched.
	DataCenter string `mapstructure:"data_center" default:"陸行鳥"`
	// ChunkSize is the number of item ids per request.
	ChunkSize int `mapstructure:"chunk_size" default:"80"`
	// Listings is the number of cheapest listings requested per item.
	Listings int `mapstructure:"listings" default:"1"`
	// RequestsPerSecond throttles outgoing requests. Zero or less disables throttling.
	RequestsPerSecond float64 `mapstructure:"requests_per_second" default:"8"`
	// Concurrency caps in-flight requests per snapshot.
	Concurrency int `mapstructure:"concurrency" default:"4"`
	// TimeoutSeconds bounds a single HTTP request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"15"`
	// CacheTTLSeconds is how long a snapshot is reused. Zero disables caching.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"300"`
}

// DefaultChunkSize is the batch size used when ChunkSize is unset.
const DefaultChunkSize = 80

func (c Config) chunkSize() int {
	if c.ChunkSize <= 0 {
		return DefaultChunkSize
	}
	return c.ChunkSize
}

func (c Config) listings() int {
	if c.Listings <= 0 {
		return 1
	}
	return c.Listings
}

func (c Config) concurrency() int {
	if c.Concurrency <= 0 {
		return 1
	}
	return c.Concurrency
}

func (c Config) timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// CacheTTL returns the snapshot reuse window.
func (c Config) CacheTTL() time.Duration {
	if c.CacheTTLSeconds <= 0 {
		return 0
	}
	return time.Duration(c.CacheTTLSeconds) * time.Second
}
