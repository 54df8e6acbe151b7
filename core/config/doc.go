// Package config loads the application configuration.
//
// Values come from the environment, optionally seeded from a .env file, with defaults declared
// on each section's struct tags. Viper resolves SECTION_KEY variables to section.key.
//
// # Configuration Structure
//
//   - Server: HTTP port, API key and read timeout
//   - Storage: MinIO/S3 credentials, bucket and gamedata object names
//   - Log: Logging level and format
//   - Database: Owned stock database (mysql or sqlite)
//   - Market: Price oracle endpoint, data center, batching and cache TTL
//   - Planner: Step and visit ceilings of the procurement engine
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Market.DataCenter)
package config
