package main

import (
	"log"
	"os"

	"open-law-be/internal/model"
	"open-law-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting Authoritative GORM Migration...")

	// 3. Pre-Migration: Extensions
	log.Println("Step 1: Setting up Extensions...")

	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
	}

	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	// 4. AutoMigrate All Models (The Core Task)
	log.Println("Step 2: Running AutoMigrate...")

	models := []interface{}{
		&model.User{},
		&model.Book{},
		&model.BookVersion{},
		&model.Collection{},
		&model.Section{},
		&model.Interpretation{},
		&model.Comment{},
		&model.AccessGroup{},
		&model.BookAccessGroup{},
		&model.CollectionAccessGroup{},
		&model.SectionAccessGroup{},
		&model.InterpretationAccessGroup{},
		&model.BookContributor{},
		&model.AuditLog{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// 5. Post-Migration: partial unique indexes.
	// Sibling labels are unique among LIVE rows only; a soft-deleted sibling
	// must not block reuse of its label. GORM tags cannot express the WHERE
	// clause, so these stay raw.
	log.Println("Step 3: Creating partial unique indexes...")

	postMigrationSQL := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_collections_sibling_label
		 ON collections (version_id, parent_id, label) WHERE NOT is_deleted;`,

		`CREATE UNIQUE INDEX IF NOT EXISTS idx_sections_sibling_label
		 ON sections (collection_id, label) WHERE NOT is_deleted;`,
	}

	for _, sql := range postMigrationSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute post-migration SQL: %v", err)
		}
	}

	log.Println("✅ Success: Database migration completed successfully via GORM.")
}
