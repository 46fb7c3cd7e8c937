package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/mattn/go-sqlite3"

	"apiTareas/models"
)

// UserSQLiteRepository implements UserRepositoryI on a SQLite database.
type UserSQLiteRepository struct {
	db *sql.DB
}

func NewUserSQLiteRepository(db *sql.DB) *UserSQLiteRepository {
	return &UserSQLiteRepository{db: db}
}

func (r *UserSQLiteRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var u models.User
	err := r.db.QueryRowContext(ctx, `SELECT id, username, password_hash FROM usuarios WHERE username = ?`, username).
		Scan(&u.ID, &u.Username, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user. The UNIQUE constraint on username maps to ErrUserExists.
func (r *UserSQLiteRepository) Create(ctx context.Context, username, passwordHash string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `INSERT INTO usuarios (username, password_hash) VALUES (?, ?)`, username, passwordHash)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return nil, ErrUserExists
		}
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &models.User{ID: id, Username: username, PasswordHash: passwordHash}, nil
}
