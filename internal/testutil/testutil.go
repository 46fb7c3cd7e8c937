package testutil

import (
	"database/sql"
	"strconv"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"apiTareas/internal/db"
	"apiTareas/repository"
)

// NewFileRepos returns JSON-file repositories rooted in a fresh temp dir.
func NewFileRepos(t *testing.T) (*repository.TaskFileRepository, *repository.UserFileRepository) {
	t.Helper()
	dir := t.TempDir()
	return repository.NewTaskFileRepository(dir), repository.NewUserFileRepository(dir)
}

// OpenInMemoryDB opens an in-memory SQLite database and applies migrations.
// The DB is closed automatically via t.Cleanup.
func OpenInMemoryDB(t *testing.T, name string) *sql.DB {
	t.Helper()
	// Shared cache so multiple connections see the same database.
	d, err := db.Open("file:" + name + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })
	return d
}

// SignToken returns a signed HS256 JWT with the session claims the app uses,
// expiring at exp. Pass a past exp to mint an already-expired token.
func SignToken(t *testing.T, secret string, userID int64, username string, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":      strconv.FormatInt(userID, 10),
		"username": username,
		"iat":      time.Now().Unix(),
		"exp":      exp.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}
