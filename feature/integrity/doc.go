// Package integrity provides health checks for the data the planner depends on.
//
// # Checks Provided
//
//   - Structure: The data/ folder exists in the storage bucket.
//   - GameData: The recipe and item documents exist, decode, and every recipe item has a name.
//   - Server: The owned_materials table matches its gorm model (columns, types).
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/structure : Runs structure check (supports ?fix=true).
//   - GET /integrity/gamedata : Runs gamedata check.
//   - GET /integrity/server : Runs server schema check.
//   - POST /integrity/reload : Drops cached gamedata and market snapshots.
package integrity
