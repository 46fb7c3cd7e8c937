package httpapi

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"apiTareas/internal/auth"
	"apiTareas/repository"
)

// Register creates a new account. The password is stored only as a bcrypt
// hash; neither the password nor the hash is ever returned to the client.
func (s *Server) Register(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if req.Username == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Usuario y contraseña son requeridos")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return err
	}

	u, err := s.Users.Create(c.Request().Context(), req.Username, hash)
	if errors.Is(err, repository.ErrUserExists) {
		return echo.NewHTTPError(http.StatusBadRequest, "Usuario ya registrado")
	}
	if err != nil {
		return err
	}

	s.Log.Info("usuario registrado", "id", u.ID, "username", u.Username)
	return c.JSON(http.StatusCreated, echo.Map{"mensaje": "Usuario registrado correctamente"})
}

// Login verifies credentials and returns a one-hour session token.
func (s *Server) Login(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if req.Username == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Usuario y contraseña son requeridos")
	}

	u, err := s.Users.GetByUsername(c.Request().Context(), req.Username)
	if errors.Is(err, repository.ErrUserNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Usuario no encontrado")
	}
	if err != nil {
		return err
	}

	if !auth.CheckPassword(req.Password, u.PasswordHash) {
		return echo.NewHTTPError(http.StatusUnauthorized, "Contraseña incorrecta")
	}

	token, err := auth.IssueToken(s.Secret, u.ID, u.Username)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"mensaje": "Login exitoso", "token": token})
}
