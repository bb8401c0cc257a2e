package database

import (
	"fmt"
	"log"
	"os"

	"inkwell-app/internal/domain/collections"
	"inkwell-app/internal/domain/contests"
	"inkwell-app/internal/domain/engagement"
	"inkwell-app/internal/domain/pennames"
	"inkwell-app/internal/domain/users"
	"inkwell-app/internal/domain/works"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("❌ DB_URL not set")
	}

	// TranslateError turns unique-key violations into
	// gorm.ErrDuplicatedKey, which the idempotent add paths rely on.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	DB = db

	// Required for gen_random_uuid()
	if err := DB.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		log.Fatal("❌ Failed to enable pgcrypto extension:", err)
	}

	if err := DB.AutoMigrate(
		&users.User{},

		&pennames.PenName{},
		&works.Work{},

		&collections.Collection{},
		&collections.CollectionWork{},

		&contests.Contest{},
		&contests.ContestSubmission{},

		&engagement.Like{},
		&engagement.Comment{},
	); err != nil {
		log.Fatal("❌ AutoMigrate error:", err)
	}

	fmt.Println("✅ Connected and migrated successfully")
}
