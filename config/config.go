package config

import (
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB opens the application database. DATABASE_DSN selects MySQL; when it
// is unset the app falls back to a local sqlite file, matching how the
// service is run in development.
func InitDB() (*gorm.DB, error) {
	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		return gorm.Open(mysql.Open(dsn), &gorm.Config{})
	}

	path := os.Getenv("SQLITE_PATH")
	if path == "" {
		path = "app.db"
	}
	return gorm.Open(sqlite.Open(path), &gorm.Config{})
}
