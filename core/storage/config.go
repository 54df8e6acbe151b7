package storage

import "time"

// Config holds configuration for the object store that serves gamedata exports.
type Config struct {
	// Endpoint is the host[:port] of the S3-compatible service. A scheme prefix is ignored.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket holds the gamedata exports.
	Bucket string `mapstructure:"bucket" default:"gamedata"`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// RecipeObject is the object name of the recipe index.
	RecipeObject string `mapstructure:"recipe_object" default:"data/recipe_index.json"`
	// ItemObject is the object name of the item catalog.
	ItemObject string `mapstructure:"item_object" default:"data/item_index.json"`
	// CacheTTLSeconds is how long loaded gamedata is reused before it is downloaded again.
	// Zero keeps the first load for the life of the process.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"3600"`
}

// CacheTTL returns the gamedata reuse window.
func (c Config) CacheTTL() time.Duration {
	if c.CacheTTLSeconds <= 0 {
		return 0
	}
	return time.Duration(c.CacheTTLSeconds) * time.Second
}
