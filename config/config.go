package config

import (
	"fmt"
	"os"

	"github.com/uda-eth/SmartChef-AI-cooking-assistant/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DBConfig selects the database backend. Postgres in deployment, sqlite for
// local runs. The open handle is returned to the caller and passed down
// explicitly so tests can run against their own isolated store.
type DBConfig struct {
	Driver string // "postgres" or "sqlite"
	DSN    string
}

func DBConfigFromEnv() DBConfig {
	if os.Getenv("DB_DRIVER") == "sqlite" {
		dsn := os.Getenv("DB_PATH")
		if dsn == "" {
			dsn = "smartchef.db"
		}
		return DBConfig{Driver: "sqlite", DSN: dsn}
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)
	return DBConfig{Driver: "postgres", DSN: dsn}
}

func ConnectDB(cfg DBConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "sqlite":
		dialector = sqlite.Open(cfg.DSN)
	default:
		dialector = postgres.Open(cfg.DSN)
	}

	// TranslateError turns driver unique-violation errors into
	// gorm.ErrDuplicatedKey so services can map them to conflicts.
	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Ingredient{},
		&models.Recipe{},
		&models.FavoriteRecipe{},
		&models.MealPlan{},
	)
	if err != nil {
		return nil, fmt.Errorf("automigrate failed: %w", err)
	}

	return db, nil
}
