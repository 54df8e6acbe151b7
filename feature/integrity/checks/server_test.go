package checks

import (
	"testing"

	"craft-planner/core/database"
	"craft-planner/core/inventory"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func columnRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"})
}

func TestCheckServerIntegrity_NilDB(t *testing.T) {
	report, err := CheckServerIntegrity(nil)
	assert.Error(t, err)
	assert.Nil(t, report)
}

func TestCheckServerIntegrity_Matched(t *testing.T) {
	db, mock := setupMockDB(t)

	rows := columnRows().
		AddRow("root_id", "int(11)", "NO", "PRI", nil, "").
		AddRow("item_id", "int(11)", "NO", "PRI", nil, "").
		AddRow("quantity", "int(11)", "NO", "", nil, "").
		AddRow("updated_at", "datetime(3)", "YES", "", nil, "")
	mock.ExpectQuery("SHOW COLUMNS FROM `owned_materials`").WillReturnRows(rows)

	report, err := CheckServerIntegrity(db)
	require.NoError(t, err)
	assert.True(t, report.Matched)
	assert.Equal(t, "mysql", report.Driver)
	assert.Equal(t, "ok", report.Tables[inventory.TableName].Status)
}

func TestCheckServerIntegrity_MissingColumn(t *testing.T) {
	db, mock := setupMockDB(t)

	rows := columnRows().
		AddRow("root_id", "int(11)", "NO", "PRI", nil, "").
		AddRow("item_id", "int(11)", "NO", "PRI", nil, "")
	mock.ExpectQuery("SHOW COLUMNS FROM `owned_materials`").WillReturnRows(rows)

	report, err := CheckServerIntegrity(db)
	require.NoError(t, err)
	assert.False(t, report.Matched)

	tbl := report.Tables[inventory.TableName]
	assert.Equal(t, "error", tbl.Status)
	assert.ElementsMatch(t, []string{"quantity", "updated_at"}, tbl.MissingColumns)
}

func TestCheckServerIntegrity_TypeMismatch(t *testing.T) {
	db, mock := setupMockDB(t)

	rows := columnRows().
		AddRow("root_id", "int(11)", "NO", "PRI", nil, "").
		AddRow("item_id", "int(11)", "NO", "PRI", nil, "").
		AddRow("quantity", "varchar(20)", "NO", "", nil, "").
		AddRow("updated_at", "datetime", "YES", "", nil, "")
	mock.ExpectQuery("SHOW COLUMNS FROM `owned_materials`").WillReturnRows(rows)

	report, err := CheckServerIntegrity(db)
	require.NoError(t, err)
	assert.Equal(t, []string{"quantity: expected int, got varchar(20)"}, report.Tables[inventory.TableName].TypeMismatches)
}

func TestCheckServerIntegrity_InspectError(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectQuery("SHOW COLUMNS FROM `owned_materials`").WillReturnError(assert.AnError)

	report, err := CheckServerIntegrity(db)
	require.NoError(t, err)
	assert.False(t, report.Matched)
	assert.Len(t, report.Errors, 1)
}

func TestCheckServerIntegrity_MigratedSQLite(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite})
	require.NoError(t, err)
	require.NoError(t, inventory.NewStore(db).Migrate())

	report, err := CheckServerIntegrity(db)
	require.NoError(t, err)
	assert.True(t, report.Matched, "%+v", report.Tables)
}

func TestParseGormTags(t *testing.T) {
	assert.Equal(t, "id", parseGormColumn("column:id;primaryKey"))
	assert.Equal(t, "item_name", parseGormColumn("primaryKey;column:item_name;type:varchar(100)"))
	assert.Equal(t, "int(11)", parseGormType("column:id;type:int(11)"))
	assert.Equal(t, "", parseGormType("column:id"))
}
