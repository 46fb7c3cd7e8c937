package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"apiTareas/models"
)

// UserFileRepository persists users as a single JSON array file.
type UserFileRepository struct {
	path string
	mu   sync.Mutex
}

// NewUserFileRepository returns a repository backed by usuarios.json under dir.
func NewUserFileRepository(dir string) *UserFileRepository {
	return &UserFileRepository{path: filepath.Join(dir, "usuarios.json")}
}

func (r *UserFileRepository) load() ([]models.User, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.User{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", r.path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return []models.User{}, nil
	}
	var usuarios []models.User
	if err := json.Unmarshal(data, &usuarios); err != nil {
		return nil, fmt.Errorf("decode %s: %w", r.path, err)
	}
	return usuarios, nil
}

func (r *UserFileRepository) save(usuarios []models.User) error {
	data, err := json.MarshalIndent(usuarios, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", r.path, err)
	}
	return nil
}

// GetByUsername scans for an exact, case-sensitive username match.
func (r *UserFileRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	usuarios, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range usuarios {
		if usuarios[i].Username == username {
			return &usuarios[i], nil
		}
	}
	return nil, ErrUserNotFound
}

// Create appends a user with id = current user count + 1.
// Returns ErrUserExists when the username is already taken.
func (r *UserFileRepository) Create(ctx context.Context, username, passwordHash string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	usuarios, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range usuarios {
		if usuarios[i].Username == username {
			return nil, ErrUserExists
		}
	}
	u := models.User{ID: int64(len(usuarios)) + 1, Username: username, PasswordHash: passwordHash}
	usuarios = append(usuarios, u)
	if err := r.save(usuarios); err != nil {
		return nil, err
	}
	return &u, nil
}
