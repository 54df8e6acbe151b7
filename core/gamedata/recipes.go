package gamedata

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"craft-planner/core/procurement"
	"craft-planner/core/storage"
	"craft-planner/core/utils"

	"github.com/goccy/go-json"
)

// recipeIndexFile is the document layout of recipe_index.json.
// Each entry is either one variant, [[ing, amt], ...], or several, [[[ing, amt], ...], ...].
type recipeIndexFile struct {
	ByResult map[string]json.RawMessage `json:"byResult"`
}

// LoadRecipeGraph downloads and decodes the recipe index. It also returns how many entries and
// ingredient pairs were skipped.
func LoadRecipeGraph(ctx context.Context, client storage.Client, bucket, objectName string) (procurement.Graph, int, error) {
	data, err := storage.ReadObject(ctx, client, bucket, objectName)
	if err != nil {
		return nil, 0, err
	}
	return ParseRecipeGraph(data)
}

// ParseRecipeGraph decodes a recipe index document and reports how many entries and pairs it skipped.
// Entries with an invalid result id or shape are skipped, as are ingredient pairs that are not
// lists or carry an invalid id or amount. A pair without an amount counts as one unit. Only a
// document that is not a recipe index at all is an error.
func ParseRecipeGraph(data []byte) (procurement.Graph, int, error) {
	var file recipeIndexFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, 0, fmt.Errorf("failed to decode recipe index: %w", err)
	}

	g := make(procurement.Graph, len(file.ByResult))
	skipped := 0
	for key, raw := range file.ByResult {
		id, err := strconv.Atoi(key)
		if err != nil || id <= 0 {
			skipped++
			continue
		}
		var entry []json.RawMessage
		if err := json.Unmarshal(raw, &entry); err != nil {
			skipped++
			continue
		}
		variants, ok, n := decodeVariants(entry)
		skipped += n
		if !ok {
			skipped++
			continue
		}
		g.Add(procurement.ItemID(id), variants...)
	}
	return g, skipped, nil
}

// decodeVariants sniffs the entry shape once: nested when the first element's first element
// is itself a list. It returns false when the entry has neither shape, and the number of pairs
// it dropped. A nested variant that is not a list stays in place as an empty variant.
func decodeVariants(entry []json.RawMessage) ([]procurement.Variant, bool, int) {
	if len(entry) == 0 {
		return nil, true, 0
	}

	first, ok := asList(entry[0])
	if !ok {
		return nil, false, 0
	}
	nested := len(first) > 0 && isList(first[0])

	if !nested {
		v, skipped := decodeVariant(entry)
		return []procurement.Variant{v}, true, skipped
	}

	variants := make([]procurement.Variant, 0, len(entry))
	skipped := 0
	for _, rawVariant := range entry {
		pairs, ok := asList(rawVariant)
		if !ok {
			skipped++
		}
		v, n := decodeVariant(pairs)
		skipped += n
		variants = append(variants, v)
	}
	return variants, true, skipped
}

func isList(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}

func asList(raw json.RawMessage) ([]json.RawMessage, bool) {
	if !isList(raw) {
		return nil, false
	}
	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, false
	}
	return list, true
}

func decodeVariant(pairs []json.RawMessage) (procurement.Variant, int) {
	v := make(procurement.Variant, 0, len(pairs))
	skipped := 0
	for _, rawPair := range pairs {
		var pair []any
		if !isList(rawPair) || json.Unmarshal(rawPair, &pair) != nil || len(pair) == 0 {
			skipped++
			continue
		}
		id, ok := utils.ToPositiveInt(pair[0])
		if !ok {
			skipped++
			continue
		}
		qty := 1
		if len(pair) > 1 && pair[1] != nil {
			if qty, ok = utils.ToPositiveInt(pair[1]); !ok {
				skipped++
				continue
			}
		}
		v = append(v, procurement.Ingredient{ItemID: procurement.ItemID(id), Quantity: qty})
	}
	return v, skipped
}
