// Package storage wraps the MinIO client used to read gamedata exports.
//
// The recipe index and item catalog are published as JSON objects in an S3-compatible bucket.
// Client narrows the MinIO API to what the service uses so tests can swap in
// core/storage/mocks.
//
// # Operations
//
//   - BucketExists: Verifies access to the target bucket.
//   - GetObject / ReadObject: Streams or fully reads an object.
//   - StatObject / ObjectExists: Checks an object without downloading it.
//   - ListObjects: Lists objects under a prefix.
//   - PutObject: Uploads content (used to create missing folders).
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	data, err := storage.ReadObject(ctx, client, cfg.Storage.Bucket, cfg.Storage.RecipeObject)
package storage
