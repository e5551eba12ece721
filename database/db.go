// Package database manages the sqlite database connection, migration and
// seed data for the lost-and-found panel.
package database

import (
	"io/fs"
	"log"
	"os"
	"path"

	"lostfound/config"
	"lostfound/database/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

func initModels() error {
	models := []any{
		&model.User{},
		&model.LostItem{},
		&model.FoundItem{},
	}
	for _, m := range models {
		if err := db.AutoMigrate(m); err != nil {
			log.Printf("Error auto migrating model: %v", err)
			return err
		}
	}
	return nil
}

// initSeedData populates the demo accounts and one item per table.
// Runs only when the users table is empty.
func initSeedData() error {
	empty, err := isTableEmpty("users")
	if err != nil {
		log.Printf("Error checking if users table is empty: %v", err)
		return err
	}
	if !empty {
		return nil
	}

	users := []model.User{
		{Username: "alice", Password: "password123", Role: model.RoleUser},
		{Username: "staff", Password: "adminpass", Role: model.RoleStaff},
	}
	if err := db.Create(&users).Error; err != nil {
		return err
	}

	lost := model.LostItem{
		Owner:       "alice",
		Title:       "Blue Backpack",
		Description: "Blue backpack with <b>laptop</b>",
	}
	if err := db.Create(&lost).Error; err != nil {
		return err
	}

	found := model.FoundItem{
		PostedBy:    "staff",
		Title:       "Black Umbrella",
		Description: "Found near library. Contact staff",
	}
	return db.Create(&found).Error
}

func isTableEmpty(tableName string) (bool, error) {
	var count int64
	err := db.Table(tableName).Count(&count).Error
	return count == 0, err
}

func InitDB(dbPath string) error {
	dir := path.Dir(dbPath)
	err := os.MkdirAll(dir, fs.ModePerm)
	if err != nil {
		return err
	}

	var gormLogger logger.Interface

	if config.IsDebug() {
		gormLogger = logger.Default
	} else {
		gormLogger = logger.Discard
	}

	c := &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	}

	dsn := dbPath + "?cache=shared&_journal_mode=WAL&_synchronous=NORMAL"
	db, err = gorm.Open(sqlite.Open(dsn), c)
	if err != nil {
		return err
	}

	if err := initModels(); err != nil {
		return err
	}
	return initSeedData()
}

func CloseDB() error {
	if db != nil {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}

func GetDB() *gorm.DB {
	return db
}

func IsNotFound(err error) bool {
	return err == gorm.ErrRecordNotFound
}
