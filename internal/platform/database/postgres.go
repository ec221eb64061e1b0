package database

import (
	"database/sql"
	"log"
	"time"

	"microfeed/internal/platform/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
)

var DB *sql.DB

func Connect() {
	var err error
	DB, err = sql.Open("pgx", config.AppConfig.DBConnStr)
	if err != nil {
		log.Fatalf("Error opening database: %v", err)
	}

	DB.SetMaxOpenConns(25)
	DB.SetMaxIdleConns(25)
	DB.SetConnMaxLifetime(5 * time.Minute)

	// Verify connection
	if err = DB.Ping(); err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
}

// Migrate applies pending schema migrations. ErrNoChange is not a failure.
func Migrate() {
	m, err := migrate.New(
		"file://"+config.AppConfig.MigrationsDir,
		"postgres://"+config.AppConfig.DBUser+":"+config.AppConfig.DBPassword+
			"@"+config.AppConfig.DBHost+":"+config.AppConfig.DBPort+
			"/"+config.AppConfig.DBName+"?sslmode="+config.AppConfig.DBSslMode,
	)
	if err != nil {
		log.Fatalf("Error creating migrator: %v", err)
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		log.Fatalf("Error applying migrations: %v", err)
	}
}

func Close() {
	if DB != nil {
		DB.Close()
	}
}
