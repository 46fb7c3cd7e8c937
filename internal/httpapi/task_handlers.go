package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"apiTareas/internal/auth"
	"apiTareas/repository"
)

// taskID parses the :id route parameter. A non-numeric id behaves like an
// unknown one: no task can match it.
func taskID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusNotFound, "Tarea no encontrada")
	}
	return id, nil
}

// ListTasks returns the full task sequence in insertion order.
func (s *Server) ListTasks(c echo.Context) error {
	tareas, err := s.Tasks.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tareas)
}

// GetTask returns one task by id.
func (s *Server) GetTask(c echo.Context) error {
	id, err := taskID(c)
	if err != nil {
		return err
	}
	t, err := s.Tasks.GetByID(c.Request().Context(), id)
	if errors.Is(err, repository.ErrTaskNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Tarea no encontrada")
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, t)
}

// CreateTask appends a new task. Both fields are required.
func (s *Server) CreateTask(c echo.Context) error {
	var req taskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if req.Titulo == "" || req.Descripcion == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Título y descripción son requeridos")
	}

	t, err := s.Tasks.Create(c.Request().Context(), req.Titulo, req.Descripcion)
	if err != nil {
		return err
	}
	if p, ok := auth.FromContext(c.Request().Context()); ok {
		s.Log.Info("tarea creada", "id", t.ID, "user", p.Username)
	}
	return c.JSON(http.StatusCreated, t)
}

// UpdateTask replaces the record wholesale, preserving the id. Field values
// are taken as-is: an empty titulo or descripcion is stored verbatim.
func (s *Server) UpdateTask(c echo.Context) error {
	id, err := taskID(c)
	if err != nil {
		return err
	}
	var req taskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Cuerpo de la petición inválido")
	}

	t, err := s.Tasks.Update(c.Request().Context(), id, req.Titulo, req.Descripcion)
	if errors.Is(err, repository.ErrTaskNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Tarea no encontrada")
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, t)
}

// DeleteTask removes one task by id.
func (s *Server) DeleteTask(c echo.Context) error {
	id, err := taskID(c)
	if err != nil {
		return err
	}
	err = s.Tasks.Delete(c.Request().Context(), id)
	if errors.Is(err, repository.ErrTaskNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Tarea no encontrada")
	}
	if err != nil {
		return err
	}
	if p, ok := auth.FromContext(c.Request().Context()); ok {
		s.Log.Info("tarea eliminada", "id", id, "user", p.Username)
	}
	return c.JSON(http.StatusOK, echo.Map{"mensaje": "Tarea eliminada correctamente"})
}
