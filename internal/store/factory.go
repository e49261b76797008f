package store

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"

	"exhibition-catalog/internal/config"
)

// Open selects a Store implementation from the configured driver.
//
//	memory: process-local, for development and tests (default)
//	file:   one file per key under cfg.DataDir
//	mysql:  blob table via cfg.MySQLDSN()
//	sqlite: blob table in the file at cfg.SQLitePath
func Open(cfg config.Config) (Store, error) {
	driver := Driver(cfg.StoreDriver)
	if driver == "" {
		driver = DriverMemory
	}
	switch driver {
	case DriverMemory:
		return NewMemory(), nil
	case DriverFile:
		return NewFile(cfg.DataDir)
	case DriverMySQL:
		return OpenSQL(mysql.Open(cfg.MySQLDSN()))
	case DriverSQLite:
		return OpenSQL(sqlite.Open(cfg.SQLitePath))
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownDriver, cfg.StoreDriver)
	}
}
