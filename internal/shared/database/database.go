package database

import (
	"database/sql"
	"log"
	"net/url"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB wraps both GORM and sql.DB
type DB struct {
	*sql.DB
	GORM *gorm.DB
}

// NewDB creates a new database connection using GORM.
// dbName, when non-empty, overrides the database selected by the
// connection string.
func NewDB(connStr, dbName string) *DB {
	if connStr == "" {
		log.Fatal("❌ DATABASE_URL is empty")
	}

	connStr = withDBName(connStr, dbName)

	gormDB, err := gorm.Open(postgres.Open(connStr), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("❌ Failed to open database: %v", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Fatalf("❌ Failed to get sql.DB: %v", err)
	}

	// Connection pool settings
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	// Ping to verify connection
	if err := sqlDB.Ping(); err != nil {
		log.Fatalf("❌ Failed to ping database: %v", err)
	}

	log.Println("✅ Database connected (GORM)!")
	return &DB{
		DB:   sqlDB,
		GORM: gormDB,
	}
}

func (db *DB) Close() error {
	log.Println("🔌 Closing database connection...")
	return db.DB.Close()
}

// withDBName rewrites the connection string so it targets dbName.
// Both URL-style (postgres://...) and keyword-style DSNs are handled.
func withDBName(connStr, dbName string) string {
	if dbName == "" {
		return connStr
	}
	if strings.Contains(connStr, "://") {
		u, err := url.Parse(connStr)
		if err != nil {
			return connStr
		}
		u.Path = "/" + dbName
		return u.String()
	}
	fields := strings.Fields(connStr)
	for i, f := range fields {
		if strings.HasPrefix(f, "dbname=") {
			fields[i] = "dbname=" + dbName
			return strings.Join(fields, " ")
		}
	}
	return connStr + " dbname=" + dbName
}
