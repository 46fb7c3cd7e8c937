package httpapi

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"apiTareas/internal/logging"
	"apiTareas/repository"
)

// Server bundles the dependencies shared by all handlers.
type Server struct {
	Tasks  repository.TaskRepositoryI
	Users  repository.UserRepositoryI
	Secret string
	Log    *slog.Logger
}

// New builds the echo application: middleware, error responder, and routes.
// Task routes require a bearer token; register/login and the banner do not.
func New(secret string, tasks repository.TaskRepositoryI, users repository.UserRepositoryI, log *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.HTTPErrorHandler = newErrorResponder(log)

	s := &Server{Tasks: tasks, Users: users, Secret: secret, Log: log}

	e.GET("/", s.Banner)
	e.POST("/register", s.Register)
	e.POST("/login", s.Login)
	e.GET("/error-test", s.ErrorTest)

	tareas := e.Group("/tareas", SessionMiddleware(secret))
	tareas.GET("", s.ListTasks)
	tareas.GET("/:id", s.GetTask)
	tareas.POST("", s.CreateTask)
	tareas.PUT("/:id", s.UpdateTask)
	tareas.DELETE("/:id", s.DeleteTask)

	return e
}

// Start listens on addr and returns a shutdown function.
func Start(addr string, e *echo.Echo) (func(context.Context) error, error) {
	if addr == "" {
		addr = ":3000"
	}
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	e.Listener = lis
	go func() {
		if err := e.Start(""); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Error(err)
		}
	}()
	return e.Shutdown, nil
}

// Banner answers the unauthenticated health-check route.
func (s *Server) Banner(c echo.Context) error {
	return c.String(http.StatusOK, "Servidor de tareas funcionando 🚀")
}

// ErrorTest always fails, to exercise the terminal error responder.
func (s *Server) ErrorTest(c echo.Context) error {
	return errors.New("fallo de prueba")
}

// newErrorResponder converts any unhandled failure or unmatched route into a
// structured JSON error body. Unexpected errors are logged with their detail
// and reported to the client only as a generic 500.
func newErrorResponder(log *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		msg := "Error interno del servidor"
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if m, ok := he.Message.(string); ok {
				msg = m
			}
		}
		if errors.Is(err, echo.ErrNotFound) || errors.Is(err, echo.ErrMethodNotAllowed) {
			code = http.StatusNotFound
			msg = "Ruta no encontrada"
		}
		if code == http.StatusInternalServerError {
			log.Error("unhandled error",
				slog.String("method", c.Request().Method),
				slog.String("path", c.Request().URL.Path),
				logging.Err(err),
			)
			msg = "Error interno del servidor"
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, echo.Map{"error": msg})
		}
		if err != nil {
			log.Error("write error response", logging.Err(err))
		}
	}
}
