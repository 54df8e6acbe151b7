// Package gamedata loads the recipe graph and item catalog exported to object storage.
//
// The recipe index (recipe_index.json) maps each craftable result to one variant or a list
// of variants. Its shape is detected once per entry here, and the engine only ever sees
// procurement.OneVariant or procurement.ManyVariants. Invalid ids and amounts are dropped at
// this boundary so the engine can assume positive integers throughout.
//
// The item index (item_index.json) supplies names and icon ids for display; it has no effect
// on cost decisions.
//
// Source downloads both documents concurrently and shares the result until its TTL lapses.
package gamedata
