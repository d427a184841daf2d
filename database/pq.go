package database

import (
	"database/sql"
	"fmt"
	"log"
	"strings"

	_ "github.com/lib/pq"
	"github.com/unishare/api/config"
)

// PostgreSQLStore is the raw database/sql path. The server itself runs on
// GORM; this store backs cmd/migrate, which creates the schema explicitly so
// deployments do not depend on AutoMigrate semantics.
type PostgreSQLStore struct {
	db *sql.DB
}

func Start() (*PostgreSQLStore, error) {
	getEnv, err := config.Get()
	if err != nil {
		return nil, err
	}

	connStr := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		getEnv.DB_HOST,
		getEnv.DB_USER_NAME,
		getEnv.DB_PASSWORD,
		getEnv.DB_NAME,
		getEnv.DB_PORT,
		getEnv.DB_SSL_MODE,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	log.Println("Successfully connected to PostgreSQL Database.")

	return &PostgreSQLStore{db: db}, nil
}

// Init creates all tables and indexes
func (s *PostgreSQLStore) Init() error {
	return s.InitTables()
}

func (s *PostgreSQLStore) InitTables() error {
	users_table := `
	CREATE TABLE IF NOT EXISTS users (
		id BIGINT PRIMARY KEY GENERATED ALWAYS AS IDENTITY,
		created_at TIMESTAMPTZ,
		updated_at TIMESTAMPTZ,
		deleted_at TIMESTAMPTZ,
		full_name TEXT NOT NULL,
		email TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		role VARCHAR(10) DEFAULT 'user',
		reset_token VARCHAR(100) UNIQUE,
		reset_expires_at TIMESTAMPTZ
	);
	`

	resources_table := `
	CREATE TABLE IF NOT EXISTS resources (
		id BIGINT PRIMARY KEY GENERATED ALWAYS AS IDENTITY,
		created_at TIMESTAMPTZ,
		updated_at TIMESTAMPTZ,
		title TEXT NOT NULL,
		description TEXT,
		course TEXT,
		cycle TEXT,
		teacher TEXT,
		file_url TEXT NOT NULL,
		file_type VARCHAR(100),
		user_id BIGINT REFERENCES users(id) ON DELETE SET NULL,
		avg_rating DOUBLE PRECISION
	);
	CREATE INDEX IF NOT EXISTS idx_resources_user_id ON resources(user_id);
	CREATE INDEX IF NOT EXISTS idx_resources_created_at ON resources(created_at DESC);
	`

	comments_table := `
	CREATE TABLE IF NOT EXISTS comments (
		id BIGINT PRIMARY KEY GENERATED ALWAYS AS IDENTITY,
		created_at TIMESTAMPTZ,
		resource_id BIGINT NOT NULL REFERENCES resources(id) ON DELETE CASCADE,
		user_id BIGINT REFERENCES users(id) ON DELETE SET NULL,
		content TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_comments_resource_id ON comments(resource_id);
	`

	ratings_table := `
	CREATE TABLE IF NOT EXISTS ratings (
		resource_id BIGINT NOT NULL REFERENCES resources(id) ON DELETE CASCADE,
		user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		value INT NOT NULL CHECK (value BETWEEN 1 AND 5),
		created_at TIMESTAMPTZ,
		updated_at TIMESTAMPTZ,
		CONSTRAINT ratings_pk PRIMARY KEY (resource_id, user_id)
	);
	`

	reports_table := `
	CREATE TABLE IF NOT EXISTS reports (
		id BIGINT PRIMARY KEY GENERATED ALWAYS AS IDENTITY,
		created_at TIMESTAMPTZ,
		resource_id BIGINT NOT NULL REFERENCES resources(id) ON DELETE CASCADE,
		user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		reason TEXT NOT NULL,
		details TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_reports_resource_id ON reports(resource_id);
	`

	audit_table := `
	CREATE TABLE IF NOT EXISTS admin_audit_logs (
		id BIGINT PRIMARY KEY GENERATED ALWAYS AS IDENTITY,
		created_at TIMESTAMPTZ,
		admin_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		action VARCHAR(50) NOT NULL,
		resource VARCHAR(50) NOT NULL,
		resource_id BIGINT,
		old_value JSONB,
		new_value JSONB,
		ip_address VARCHAR(45),
		user_agent TEXT,
		description TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_admin_audit_logs_admin_id ON admin_audit_logs(admin_id);
	`

	all_tables := strings.Join([]string{
		users_table,
		resources_table,
		comments_table,
		ratings_table,
		reports_table,
		audit_table,
	}, "")

	_, err := s.db.Exec(all_tables)
	return err
}

// Close closes the connection pool
func (s *PostgreSQLStore) Close() error {
	return s.db.Close()
}

// HealthCheck pings the database
func (s *PostgreSQLStore) HealthCheck() error {
	return s.db.Ping()
}

// GetDB returns the underlying *sql.DB
func (s *PostgreSQLStore) GetDB() interface{} {
	return s.db
}
