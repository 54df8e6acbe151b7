package checks

import (
	"context"
	"fmt"
	"slices"

	"craft-planner/core/gamedata"
	"craft-planner/core/procurement"
	"craft-planner/core/storage"

	"golang.org/x/sync/errgroup"
)

// GameDataReport is the result of checking the recipe and item documents.
type GameDataReport struct {
	Missing []string `json:"missing"`
	Recipes int      `json:"recipes"`
	Items   int      `json:"items"`
	// Skipped counts recipe entries and pairs dropped as malformed or invalid.
	Skipped int `json:"skipped"`
	// Unnamed lists recipe results and ingredients absent from the item index.
	Unnamed []procurement.ItemID `json:"unnamed"`
	Errors  []string             `json:"errors"`
}

// OK reports whether both documents are present, decodable and consistent.
func (r *GameDataReport) OK() bool {
	return len(r.Missing) == 0 && len(r.Errors) == 0 && len(r.Unnamed) == 0
}

// CheckGameData verifies that the recipe and item documents exist and decode, and that every
// item used by a recipe has an entry in the item index.
func CheckGameData(ctx context.Context, client storage.Client, bucket, recipeObject, itemObject string) (*GameDataReport, error) {
	report := &GameDataReport{
		Missing: []string{},
		Unnamed: []procurement.ItemID{},
		Errors:  []string{},
	}

	if err := requireBucket(ctx, client, bucket); err != nil {
		return nil, err
	}

	for _, name := range []string{recipeObject, itemObject} {
		ok, err := storage.ObjectExists(ctx, client, bucket, name)
		if err != nil {
			return nil, err
		}
		if !ok {
			report.Missing = append(report.Missing, name)
		}
	}
	if len(report.Missing) > 0 {
		return report, nil
	}

	var (
		graph   procurement.Graph
		catalog *gamedata.Catalog
		skipped int
		errs    [2]error
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		graph, skipped, errs[0] = gamedata.LoadRecipeGraph(gctx, client, bucket, recipeObject)
		return nil
	})
	g.Go(func() error {
		catalog, errs[1] = gamedata.LoadCatalog(gctx, client, bucket, itemObject)
		return nil
	})
	_ = g.Wait()

	for i, name := range []string{recipeObject, itemObject} {
		if errs[i] != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", name, errs[i]))
		}
	}
	if len(report.Errors) > 0 {
		return report, nil
	}

	report.Recipes = len(graph)
	report.Skipped = skipped
	report.Items = catalog.Len()
	report.Unnamed = unnamedItems(graph, catalog)
	return report, nil
}

func unnamedItems(g procurement.Graph, catalog *gamedata.Catalog) []procurement.ItemID {
	seen := make(map[procurement.ItemID]struct{})
	check := func(id procurement.ItemID) {
		if _, ok := catalog.Metadata(id); !ok {
			seen[id] = struct{}{}
		}
	}
	for id := range g {
		check(id)
		for _, v := range g.Variants(id) {
			for _, ing := range v {
				check(ing.ItemID)
			}
		}
	}

	out := make([]procurement.ItemID, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}
