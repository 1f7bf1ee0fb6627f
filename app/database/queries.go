package database

import (
	"database/sql"
	"time"

	"github.com/Cesar-OOS/sistemaCursosTecnm/app/models"

	"golang.org/x/crypto/bcrypt"
)

// hashPassword hashes a password using bcrypt
func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

func GetUserByEmail(db *sql.DB, driver, email string) (*models.User, error) {
	user := &models.User{}
	query := Rebind(driver, `SELECT id, email, password, first_name, last_name, is_active, created_at
		FROM users WHERE email = ? AND is_active = TRUE`)

	err := db.QueryRow(query, email).Scan(
		&user.ID, &user.Email, &user.Password, &user.FirstName,
		&user.LastName, &user.IsActive, &user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserByID(db *sql.DB, driver, userID string) (*models.User, error) {
	user := &models.User{}
	query := Rebind(driver, `SELECT id, email, password, first_name, last_name, is_active, created_at
		FROM users WHERE id = ? AND is_active = TRUE`)

	err := db.QueryRow(query, userID).Scan(
		&user.ID, &user.Email, &user.Password, &user.FirstName,
		&user.LastName, &user.IsActive, &user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func CreateUser(db *sql.DB, driver string, user *models.User) error {
	hashed, err := hashPassword(user.Password)
	if err != nil {
		return err
	}
	query := Rebind(driver, `INSERT INTO users (id, email, password, first_name, last_name)
		VALUES (?, ?, ?, ?, ?)`)
	_, err = db.Exec(query, user.ID, user.Email, hashed, user.FirstName, user.LastName)
	return err
}

func CreateSession(db *sql.DB, driver, sessionID, userID string, expiresAt time.Time) error {
	query := Rebind(driver, `INSERT INTO sessions (id, user_id, expires_at) VALUES (?, ?, ?)`)
	_, err := db.Exec(query, sessionID, userID, expiresAt)
	return err
}

func DeleteSession(db *sql.DB, driver, sessionID string) error {
	query := Rebind(driver, `DELETE FROM sessions WHERE id = ?`)
	_, err := db.Exec(query, sessionID)
	return err
}

// DeleteExpiredSessions removes sessions past their expiry. Called by the
// background maintenance service.
func DeleteExpiredSessions(db *sql.DB, driver string) (int64, error) {
	query := Rebind(driver, `DELETE FROM sessions WHERE expires_at < ?`)
	res, err := db.Exec(query, time.Now())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
