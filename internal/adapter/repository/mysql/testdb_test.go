package mysql

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory sqlite database with hand-written DDL. The
// entity gorm tags carry mysql-only types (char, enum), so AutoMigrate is not
// usable here; the schema below mirrors the real one with portable types.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// an in-memory db lives per connection; keep the pool at one
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	ddl := []string{
		`CREATE TABLE huskies (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			husky_id TEXT NOT NULL,
			title TEXT NOT NULL,
			jd_p1 TEXT, jd_p2 TEXT, jd_p3 TEXT,
			experience_level TEXT,
			grade TEXT,
			priority INTEGER NOT NULL DEFAULT 2,
			job_family_id INTEGER,
			lab_id INTEGER,
			feature_team_id INTEGER,
			business_description TEXT,
			platform_id INTEGER NOT NULL,
			created_by_user_id INTEGER,
			created_at DATETIME,
			updated_at DATETIME,
			deleted_at DATETIME
		)`,
		`CREATE TABLE husky_approvals (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			approval_id TEXT NOT NULL UNIQUE,
			husky_id INTEGER NOT NULL,
			approver_id INTEGER NOT NULL,
			level INTEGER NOT NULL,
			status TEXT NOT NULL DEFAULT 'Pending',
			reason TEXT,
			created_at DATETIME,
			updated_at DATETIME,
			UNIQUE (husky_id, level)
		)`,
		`CREATE TABLE users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			email TEXT NOT NULL,
			password_hash TEXT NOT NULL,
			name TEXT NOT NULL,
			emp_id INTEGER,
			role_id INTEGER NOT NULL DEFAULT 1,
			platform_id INTEGER NOT NULL,
			created_at DATETIME,
			updated_at DATETIME,
			deleted_at DATETIME
		)`,
		`CREATE TABLE platforms (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			created_at DATETIME,
			updated_at DATETIME
		)`,
		`CREATE TABLE job_families (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			created_at DATETIME,
			updated_at DATETIME
		)`,
		`CREATE TABLE labs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			created_at DATETIME,
			updated_at DATETIME
		)`,
		`CREATE TABLE feature_teams (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			lab_id INTEGER NOT NULL,
			created_at DATETIME,
			updated_at DATETIME
		)`,
	}
	for _, stmt := range ddl {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("ddl: %v", err)
		}
	}
	return db
}
