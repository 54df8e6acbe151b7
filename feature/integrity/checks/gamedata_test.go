package checks

import (
	"context"
	"io"
	"strings"
	"testing"

	"craft-planner/core/procurement"
	"craft-planner/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	recipeObject = "data/recipe_index.json"
	itemObject   = "data/item_index.json"
)

func gamedataClient(recipes, items string) *mocks.Client {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "gamedata").Return(true, nil)
	client.On("StatObject", mock.Anything, "gamedata", mock.Anything, mock.Anything).Return(minio.ObjectInfo{}, nil)
	client.On("GetObject", mock.Anything, "gamedata", recipeObject, mock.Anything).
		Return(io.NopCloser(strings.NewReader(recipes)), nil)
	client.On("GetObject", mock.Anything, "gamedata", itemObject, mock.Anything).
		Return(io.NopCloser(strings.NewReader(items)), nil)
	return client
}

func TestCheckGameData(t *testing.T) {
	ctx := context.Background()

	t.Run("Consistent documents", func(t *testing.T) {
		client := gamedataClient(
			`{"byResult":{"1":[[2,3]],"3":[[1,1],[4,2]]}}`,
			`{"items":[[1,"Potion",0],[2,"Herb",0],[3,"Elixir",0],[4,"Water",0]]}`,
		)

		report, err := CheckGameData(ctx, client, "gamedata", recipeObject, itemObject)
		require.NoError(t, err)
		assert.True(t, report.OK())
		assert.Equal(t, 2, report.Recipes)
		assert.Equal(t, 4, report.Items)
		assert.Zero(t, report.Skipped)
	})

	t.Run("Malformed entries are counted", func(t *testing.T) {
		client := gamedataClient(
			`{"byResult":{"1":[[2,3],"x"],"3":[1,1]}}`,
			`{"items":[[1,"Potion",0],[2,"Herb",0]]}`,
		)

		report, err := CheckGameData(ctx, client, "gamedata", recipeObject, itemObject)
		require.NoError(t, err)
		assert.True(t, report.OK())
		assert.Equal(t, 1, report.Recipes)
		assert.Equal(t, 2, report.Skipped)
	})

	t.Run("Unnamed ingredients", func(t *testing.T) {
		client := gamedataClient(
			`{"byResult":{"1":[[2,3],[7,1]]}}`,
			`{"items":[[1,"Potion",0]]}`,
		)

		report, err := CheckGameData(ctx, client, "gamedata", recipeObject, itemObject)
		require.NoError(t, err)
		assert.False(t, report.OK())
		assert.Equal(t, []procurement.ItemID{2, 7}, report.Unnamed)
	})

	t.Run("Undecodable document", func(t *testing.T) {
		client := gamedataClient(`{"byResult":`, `{"items":[]}`)

		report, err := CheckGameData(ctx, client, "gamedata", recipeObject, itemObject)
		require.NoError(t, err)
		require.Len(t, report.Errors, 1)
		assert.Contains(t, report.Errors[0], recipeObject)
	})

	t.Run("Missing documents", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "gamedata").Return(true, nil)
		client.On("StatObject", mock.Anything, "gamedata", recipeObject, mock.Anything).Return(minio.ObjectInfo{}, nil)
		client.On("StatObject", mock.Anything, "gamedata", itemObject, mock.Anything).
			Return(minio.ObjectInfo{}, minio.ErrorResponse{Code: "NoSuchKey"})

		report, err := CheckGameData(ctx, client, "gamedata", recipeObject, itemObject)
		require.NoError(t, err)
		assert.Equal(t, []string{itemObject}, report.Missing)
		client.AssertNotCalled(t, "GetObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Stat failure", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "gamedata").Return(true, nil)
		client.On("StatObject", mock.Anything, "gamedata", mock.Anything, mock.Anything).Return(minio.ObjectInfo{}, assert.AnError)

		_, err := CheckGameData(ctx, client, "gamedata", recipeObject, itemObject)
		assert.ErrorIs(t, err, assert.AnError)
	})
}
