package repositories

import (
	"database/sql"
	"errors"
	"strings"

	intconfig "railbook/internal/config"
	intdb "railbook/internal/db"
	"railbook/internal/domain"
	"railbook/internal/domain/models"
)

// UserRepository backs the dashboard auth subsystem (MySQL).
type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// GetByLogin accepts email or username and returns the user row plus its
// password hash for verification.
func (r UserRepository) GetByLogin(login string) (models.User, string, error) {
	db := r.db()
	if db == nil {
		return models.User{}, "", domain.InternalError{Msg: "auth store not connected"}
	}

	var (
		u    models.User
		hash string
	)
	err := db.QueryRow(`
		SELECT id, name, username, email, password_hash, role, status
		FROM users
		WHERE email = ? OR username = ?
		LIMIT 1`, login, login).Scan(
		&u.ID, &u.Name, &u.Username, &u.Email, &hash, &u.Role, &u.Status,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, "", domain.NotFoundError{Resource: "user", Err: err}
		}
		return models.User{}, "", domain.InternalError{Msg: "user query failed", Err: err}
	}
	return u, hash, nil
}

func (r UserRepository) Exists(email, username string) (bool, error) {
	db := r.db()
	if db == nil {
		return false, domain.InternalError{Msg: "auth store not connected"}
	}
	var count int
	err := db.QueryRow(`
		SELECT COUNT(*) FROM users
		WHERE email = ? OR username = ?`, email, username).Scan(&count)
	if err != nil {
		return false, domain.InternalError{Msg: "user lookup failed", Err: err}
	}
	return count > 0, nil
}

func (r UserRepository) Create(name, username, email, passwordHash string) (int64, error) {
	db := r.db()
	if db == nil {
		return 0, domain.InternalError{Msg: "auth store not connected"}
	}
	res, err := db.Exec(`
		INSERT INTO users (name, username, email, password_hash, role, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, 'operator', 'active', NOW(), NOW())`,
		strings.TrimSpace(name), strings.TrimSpace(username), strings.TrimSpace(email), passwordHash,
	)
	if err != nil {
		return 0, domain.InternalError{Msg: "user insert failed", Err: err}
	}
	id, _ := res.LastInsertId()
	return id, nil
}

// EnsureSchema bootstraps the users table on first run.
func (r UserRepository) EnsureSchema() error {
	db := r.db()
	if db == nil {
		return domain.InternalError{Msg: "auth store not connected"}
	}
	if intdb.HasTable(db, "users") {
		return nil
	}
	ddl := `
CREATE TABLE IF NOT EXISTS users (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	username VARCHAR(100) NOT NULL,
	email VARCHAR(255) NOT NULL,
	password_hash VARCHAR(255) NOT NULL,
	role VARCHAR(50) NOT NULL DEFAULT 'operator',
	status VARCHAR(50) NOT NULL DEFAULT 'active',
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
	UNIQUE KEY uniq_username (username),
	UNIQUE KEY uniq_email (email)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`
	_, err := db.Exec(ddl)
	if err != nil {
		return domain.InternalError{Msg: "users table bootstrap failed", Err: err}
	}
	return nil
}
