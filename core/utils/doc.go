// Package utils holds conversion helpers for loosely typed JSON values.
// Gamedata exports encode ids and amounts as JSON numbers, numeric strings or nothing at all;
// these helpers turn them into validated Go integers and strings.
package utils
