package postgres

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"movemate/internal/logger"
	"movemate/internal/repository/db"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// CreateUser creates a new user with hashed password
func (p *PostgresDB) CreateUser(firstName, lastName, email, password string) (*db.User, error) {
	conn := p.conn

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	userID := uuid.New().String()
	var createdAt time.Time

	query := `
	INSERT INTO users (id, first_name, last_name, email, password_hash)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id, created_at
	`

	err = conn.QueryRow(query, userID, firstName, lastName, email, string(hashedPassword)).Scan(&userID, &createdAt)
	if err != nil {
		if strings.Contains(err.Error(), "users_email_key") {
			return nil, fmt.Errorf("email already registered")
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	logger.Log.WithFields(logrus.Fields{"email": email, "user_id": userID}).Info("Created new user")

	return &db.User{
		ID:        userID,
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		CreatedAt: createdAt,
	}, nil
}

// GetUserByEmail retrieves a user by email
func (p *PostgresDB) GetUserByEmail(email string) (*db.User, error) {
	conn := p.conn

	var user db.User
	query := `SELECT id, first_name, last_name, email, password_hash, created_at FROM users WHERE email = $1`

	err := conn.QueryRow(query, email).Scan(&user.ID, &user.FirstName, &user.LastName, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user not found")
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return &user, nil
}

// GetUserByID retrieves a user by ID
func (p *PostgresDB) GetUserByID(id string) (*db.User, error) {
	conn := p.conn

	var user db.User
	query := `SELECT id, first_name, last_name, email, password_hash, created_at FROM users WHERE id = $1`

	err := conn.QueryRow(query, id).Scan(&user.ID, &user.FirstName, &user.LastName, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user not found")
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return &user, nil
}
