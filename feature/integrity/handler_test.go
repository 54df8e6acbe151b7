package integrity

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"craft-planner/core/storage/mocks"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) (*fiber.App, *mocks.Client, sqlmock.Sqlmock) {
	app := fiber.New()
	mockClient := new(mocks.Client)
	db, sqlMock := setupMockDB(t)
	svc := NewService(mockClient, testStorage, zap.NewNop(), db)
	NewHandler(svc).RegisterRoutes(app)
	return app, mockClient, sqlMock
}

func TestHandleStructureCheck(t *testing.T) {
	app, mockClient, _ := setupTestApp(t)

	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
	mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return(emptyListing())

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/structure", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "checked", body["status"])
	assert.Equal(t, []any{"data"}, body["missing"])

	t.Run("Fix", func(t *testing.T) {
		mockClient.On("PutObject", mock.Anything, "test-bucket", "data/", mock.Anything, int64(0), mock.Anything).Return(minio.UploadInfo{}, nil)

		resp, err := app.Test(httptest.NewRequest("GET", "/integrity/structure?fix=true", nil))
		require.NoError(t, err)

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "fixed", body["status"])
	})
}

func TestHandleGameDataCheck_BucketError(t *testing.T) {
	app, mockClient, _ := setupTestApp(t)
	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(false, assert.AnError)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/gamedata", nil))
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
}

func TestHandleServerCheck(t *testing.T) {
	app, _, sqlMock := setupTestApp(t)

	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
		AddRow("root_id", "int(11)", "NO", "PRI", nil, "").
		AddRow("item_id", "int(11)", "NO", "PRI", nil, "").
		AddRow("quantity", "int(11)", "NO", "", nil, "").
		AddRow("updated_at", "datetime(3)", "YES", "", nil, "")
	sqlMock.ExpectQuery("SHOW COLUMNS FROM `owned_materials`").WillReturnRows(rows)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/server", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["matched"])
}

func TestHandleIntegrityCheck(t *testing.T) {
	app, mockClient, sqlMock := setupTestApp(t)

	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
	mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return(emptyListing())
	mockClient.On("StatObject", mock.Anything, "test-bucket", mock.Anything, mock.Anything).
		Return(minio.ObjectInfo{}, minio.ErrorResponse{Code: "NoSuchKey"})
	sqlMock.ExpectQuery("SHOW COLUMNS FROM `owned_materials`").WillReturnError(assert.AnError)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body, "structure")
	assert.Contains(t, body, "gamedata")
	assert.Contains(t, body, "server")
}

func TestHandleReload(t *testing.T) {
	app, _, _ := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("POST", "/integrity/reload", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}
