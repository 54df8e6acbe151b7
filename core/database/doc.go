// Package database opens the relational store used for owned stock and inspects its schema.
//
// Connect wraps GORM with either the MySQL driver (production) or the SQLite driver
// (single-user setups and tests). GetTableColumns reads the live column list of a table so
// the server integrity check can compare it against the GORM model.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logg.Warn("Owned stock will not be persisted", zap.Error(err))
//	}
//
//	columns, err := database.GetTableColumns(db, "owned_materials")
package database
