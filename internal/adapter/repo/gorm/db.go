// Package gormrepo archives match events and finished matches to postgres
// behind the same ports as the in-memory repositories. It is wired only
// when an archive DSN is configured.
package gormrepo

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func OpenPostgres(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&matchEventModel{}, &matchRecordModel{})
}
