package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"taskboard/internal/middleware"
	"taskboard/internal/model"
	"taskboard/internal/session"
	"taskboard/internal/task"
	"taskboard/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment model.Environment

	mw middleware.Middleware

	taskUC   task.UseCase
	sessions *session.Provider
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment model.Environment

	Middleware      middleware.Middleware
	TaskUseCase     task.UseCase
	SessionProvider *session.Provider
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		mw:          cfg.Middleware,
		taskUC:      cfg.TaskUseCase,
		sessions:    cfg.SessionProvider,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.taskUC == nil {
		return errors.New("task use case is required")
	}
	if srv.sessions == nil {
		return errors.New("session provider is required")
	}
	return nil
}
