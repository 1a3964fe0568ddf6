package db

import (
	"fmt"
	"log"
	"os"
	"strings"

	"imagemaker-server/entities"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the Postgres connection, configures the pool and runs the
// schema migrations. The returned handle is passed into every repository;
// nothing in the codebase holds the connection at package scope.
func Connect() (Database, error) {
	var dsn string

	// Check if DB_URL is provided (connection string)
	dbURL := os.Getenv("DB_URL")
	if dbURL != "" {
		dsn = dbURL

		// Hosted databases expect SSL; add it when the URL doesn't say
		if !strings.Contains(dsn, "sslmode=") {
			if strings.Contains(dsn, "?") {
				dsn += "&sslmode=require"
			} else {
				dsn += "?sslmode=require"
			}
		}

		log.Println("Connecting to database using DB_URL...")
	} else {
		// Build DSN from individual parameters
		dbHost := os.Getenv("DB_HOST")
		dbPort := os.Getenv("DB_PORT")
		dbUser := os.Getenv("DB_USER")
		dbPassword := os.Getenv("DB_PASSWORD")
		dbName := os.Getenv("DB_NAME")

		if dbHost == "" || dbPort == "" || dbUser == "" || dbPassword == "" || dbName == "" {
			return nil, fmt.Errorf("missing required database configuration: DB_URL or (DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME)")
		}

		sslMode := "require"
		if dbHost == "localhost" || dbHost == "127.0.0.1" {
			sslMode = "disable"
		}

		dsn = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
			dbHost, dbUser, dbPassword, dbName, dbPort, sslMode)
		log.Printf("Connecting to database using individual parameters (sslmode=%s)...", sslMode)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Info),
		PrepareStmt:    true,
		TranslateError: true, // surface unique violations as gorm.ErrDuplicatedKey
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(0)

	log.Println("Database connection established successfully!")

	log.Println("Running database migrations...")
	if err := db.AutoMigrate(
		&entities.User{},
		&entities.Profile{},
		&entities.UserPreferences{},
		&entities.Style{},
		&entities.TextInput{},
		&entities.GeneratedImage{},
		&entities.ImageRequestLog{},
		&entities.FeedbackSubmission{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Println("Database migrations completed successfully!")

	return &GormDatabase{DB: db}, nil
}

// Close releases the underlying connection pool.
func Close(database Database) error {
	sqlDB, err := database.GetDB().DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
