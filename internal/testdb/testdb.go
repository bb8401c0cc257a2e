// Package testdb opens throwaway sqlite databases for storage-level
// tests and installs them as the process-global connection while the
// test runs.
package testdb

import (
	"testing"

	"inkwell-app/database"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Mirrors the Postgres schema closely enough for the queries under
// test. UUID defaults are left out; tests insert explicit ids.
var schema = []string{
	`CREATE TABLE users (
		id text PRIMARY KEY,
		name text,
		email text,
		image text,
		password text,
		auth_provider text,
		google_sub text,
		role text,
		streak_length integer,
		creation_date datetime
	)`,
	`CREATE TABLE pen_names (
		id text PRIMARY KEY,
		user_id text,
		name text,
		reveal_date datetime,
		creation_date datetime
	)`,
	`CREATE TABLE works (
		id text PRIMARY KEY,
		pen_name_id text,
		title text,
		content text,
		summary text,
		teaser_date datetime,
		publication_date datetime,
		creation_date datetime,
		last_edited_date datetime
	)`,
	`CREATE TABLE collections (
		id text PRIMARY KEY,
		user_id text,
		title text,
		description text,
		public_submissions_allowed boolean,
		owner_hidden_date datetime,
		creation_date datetime
	)`,
	`CREATE TABLE collection_works (
		collection_id text,
		work_id text,
		added_by_pen_name_id text,
		added_date datetime,
		PRIMARY KEY (collection_id, work_id)
	)`,
	`CREATE TABLE contests (
		id text PRIMARY KEY,
		creator_user_id text,
		name text,
		title text,
		description text,
		prompt text,
		rules text,
		prompt_reveal_date datetime,
		submission_start_date datetime,
		submission_end_date datetime,
		creation_date datetime,
		last_edited_date datetime
	)`,
	`CREATE TABLE contest_submissions (
		contest_id text,
		work_id text,
		submission_date datetime,
		PRIMARY KEY (contest_id, work_id)
	)`,
	`CREATE TABLE likes (
		user_id text,
		work_id text,
		creation_date datetime,
		PRIMARY KEY (user_id, work_id),
		FOREIGN KEY (work_id) REFERENCES works (id)
	)`,
	`CREATE TABLE comments (
		id text PRIMARY KEY,
		user_id text,
		work_id text,
		content text,
		creation_date datetime,
		FOREIGN KEY (work_id) REFERENCES works (id)
	)`,
}

// Open returns an in-memory database with the schema applied and swaps
// it in as database.DB until the test finishes. TranslateError is on,
// as in production, so constraint violations surface as
// gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated.
func Open(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// A single connection keeps every query on the same :memory: DB.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		t.Fatalf("enable foreign keys: %v", err)
	}
	for _, stmt := range schema {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("create schema: %v", err)
		}
	}

	prev := database.DB
	database.DB = db
	t.Cleanup(func() {
		database.DB = prev
		sqlDB.Close()
	})

	return db
}
