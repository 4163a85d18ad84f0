package main

import (
	"log"
	"os"

	"mindwell-be/internal/model"
	"mindwell-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		color.Red("Error: DB_CONNECTION_STRING is not set")
		os.Exit(1)
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		color.Red("Error: Failed to connect to database: %v", err)
		os.Exit(1)
	}

	color.Cyan("Starting GORM Migration...")

	// 3. Pre-Migration: Extensions & Enums (Things GORM AutoMigrate doesn't do)
	color.Cyan("Step 1: Setting up Extensions and Enums...")

	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,

		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'user_role') THEN CREATE TYPE user_role AS ENUM ('user', 'admin'); END IF; END $$;`,
		`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'user_status') THEN CREATE TYPE user_status AS ENUM ('pending', 'active', 'blocked'); END IF; END $$;`,
	}

	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			color.Yellow("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	// 4. AutoMigrate All Models
	color.Cyan("Step 2: Running AutoMigrate for 8 Tables...")

	models := []interface{}{
		&model.User{},
		&model.EmailVerificationToken{},
		&model.UserRefreshToken{},
		&model.MoodLog{},
		&model.DiaryEntry{},
		&model.ChatMessage{},
		&model.AISummary{},
		&model.AIRecommendation{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		color.Red("Error: AutoMigrate failed: %v", err)
		os.Exit(1)
	}

	color.Green("Migration completed successfully.")
}
