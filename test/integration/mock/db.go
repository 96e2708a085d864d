// Package mock provides test doubles for the integration suite.
package mock

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Db wraps an in-memory SQLite connection for feature scenarios. Every
// scenario opens a fresh database so state never leaks between features.
type Db struct {
	DbConn *gorm.DB
}

// NewDb opens an in-memory database and migrates the given models.
func NewDb(models ...any) *Db {
	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic(fmt.Sprintf("failed to open in-memory database: %v", err))
	}

	if err := conn.AutoMigrate(models...); err != nil {
		panic(fmt.Sprintf("failed to migrate test schema: %v", err))
	}

	return &Db{DbConn: conn}
}

// CountRows returns the number of rows currently stored in the table.
func (d *Db) CountRows(table string) (int64, error) {
	var count int64
	err := d.DbConn.Table(table).Count(&count).Error
	return count, err
}

// Close releases the underlying connection.
func (d *Db) Close() {
	sqlDB, err := d.DbConn.DB()
	if err != nil {
		return
	}
	_ = sqlDB.Close()
}
