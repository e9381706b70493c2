// Package db sets up the database connection
package db

import (
	"fmt"
	"verdant/plantcare-api/internal/model"

	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func New() (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	// TranslateError turns driver-specific constraint violations into
	// gorm.ErrDuplicatedKey and friends
	cfg := &gorm.Config{TranslateError: true}

	switch viper.GetString("database.driver") {
	case "postgres":
		db, err = gorm.Open(postgres.Open(viper.GetString("database.dsn")), cfg)
	default:
		db, err = gorm.Open(sqlite.Open(viper.GetString("database.dsn")), cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open database, %w", err)
	}

	err = db.AutoMigrate(model.User{}, model.Plant{}, model.Reminder{})
	if err != nil {
		return nil, fmt.Errorf("failed to automigrate tables, %w", err)
	}

	return db, nil
}
