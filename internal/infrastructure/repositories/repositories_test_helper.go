package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createVerificationCodeTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE verification_codes (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL,
		code TEXT NOT NULL,
		expires_at DATETIME NOT NULL,
		created_at DATETIME
	);`)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL DEFAULT '',
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createApplicationTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE applications (
		id TEXT PRIMARY KEY,
		full_name TEXT NOT NULL,
		email TEXT NOT NULL,
		age INTEGER NOT NULL,
		location TEXT NOT NULL,
		current_education TEXT NOT NULL,
		institution TEXT NOT NULL,
		major TEXT,
		graduation_year INTEGER,
		work_experience TEXT,
		entrepreneurial_experience TEXT,
		technical_skills TEXT,
		why_program TEXT NOT NULL,
		career_goals TEXT NOT NULL,
		biggest_challenge TEXT,
		unique_contribution TEXT,
		program_goals TEXT NOT NULL,
		financial_aid TEXT NOT NULL,
		commitment_serious BOOLEAN NOT NULL,
		commitment_dedicated BOOLEAN NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		accepted_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}
