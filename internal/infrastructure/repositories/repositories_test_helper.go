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

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE,
		password_hash TEXT,
		role TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createClientTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE clients (
		id TEXT PRIMARY KEY,
		user_id TEXT UNIQUE NOT NULL,
		email TEXT UNIQUE NOT NULL,
		balances TEXT NOT NULL,
		amount INTEGER NOT NULL DEFAULT 0,
		risk_level TEXT NOT NULL DEFAULT 'medium',
		is_active BOOLEAN NOT NULL DEFAULT 1,
		kyc_completed BOOLEAN NOT NULL DEFAULT 0,
		kyc_file_name TEXT,
		onboarding_done BOOLEAN NOT NULL DEFAULT 0,
		assigned_seller_id TEXT,
		tax_percentage REAL NOT NULL DEFAULT 0,
		tax_currency TEXT NOT NULL DEFAULT 'BTC',
		tax_status TEXT NOT NULL DEFAULT 'unpaid',
		tax_wallet_address TEXT,
		last_connection DATETIME,
		last_ip TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE admin_notes (
		id TEXT PRIMARY KEY,
		client_id TEXT NOT NULL,
		author_id TEXT NOT NULL,
		note TEXT NOT NULL,
		created_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE payment_messages (
		id TEXT PRIMARY KEY,
		client_id TEXT NOT NULL,
		seller_id TEXT NOT NULL,
		message TEXT NOT NULL,
		created_at DATETIME
	);`)
}

func createRecoveryRequestTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE recovery_requests (
		id TEXT PRIMARY KEY,
		type TEXT NOT NULL,
		email TEXT NOT NULL,
		payload TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createAuditLogTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE audit_logs (
		id TEXT PRIMARY KEY,
		actor_id TEXT NOT NULL,
		action TEXT NOT NULL,
		target_type TEXT,
		target_id TEXT,
		detail TEXT,
		ip_address TEXT,
		created_at DATETIME
	);`)
}

func createKYCDocumentTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE kyc_documents (
		id TEXT PRIMARY KEY,
		client_id TEXT NOT NULL,
		file_name TEXT NOT NULL,
		content_type TEXT NOT NULL,
		size_bytes INTEGER NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		uploaded_at DATETIME
	);`)
}

func createSettingTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at DATETIME
	);`)
}
