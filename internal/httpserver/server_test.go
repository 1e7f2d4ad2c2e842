package httpserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"taskboard/internal/middleware"
	"taskboard/internal/model"
	"taskboard/internal/session"
	"taskboard/internal/task"
	"taskboard/pkg/supabase"
)

type noopLogger struct{}

func (noopLogger) Debug(ctx context.Context, args ...any)                  {}
func (noopLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (noopLogger) Info(ctx context.Context, args ...any)                   {}
func (noopLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (noopLogger) Warn(ctx context.Context, args ...any)                   {}
func (noopLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (noopLogger) Error(ctx context.Context, args ...any)                  {}
func (noopLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (noopLogger) DPanic(ctx context.Context, args ...any)                 {}
func (noopLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (noopLogger) Panic(ctx context.Context, args ...any)                  {}
func (noopLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (noopLogger) Fatal(ctx context.Context, args ...any)                  {}
func (noopLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type stubUseCase struct{}

func (stubUseCase) Submit(ctx context.Context, sc model.Scope, input task.SubmitInput) (model.Task, error) {
	return model.Task{}, nil
}
func (stubUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	return task.ListOutput{}, nil
}
func (stubUseCase) UpdateStatus(ctx context.Context, sc model.Scope, input task.UpdateStatusInput) (model.Task, error) {
	return model.Task{}, nil
}
func (stubUseCase) UpdateTags(ctx context.Context, sc model.Scope, input task.UpdateTagsInput) (model.Task, error) {
	return model.Task{}, nil
}
func (stubUseCase) UpdateSchedule(ctx context.Context, sc model.Scope, input task.UpdateScheduleInput) (model.Task, error) {
	return model.Task{}, nil
}
func (stubUseCase) Stats(ctx context.Context, sc model.Scope) (task.StatsOutput, error) {
	return task.StatsOutput{}, nil
}

func newTestServer(t *testing.T, env model.Environment) *HTTPServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := noopLogger{}
	sessions := session.New(supabase.NewAuthClient("http://127.0.0.1:1", "anon"), logger)
	t.Cleanup(sessions.Close)

	srv, err := New(logger, Config{
		Logger:          logger,
		Port:            8080,
		Mode:            gin.TestMode,
		Environment:     env,
		Middleware:      middleware.New(logger, "test-secret", 0),
		TaskUseCase:     stubUseCase{},
		SessionProvider: sessions,
	})
	if err != nil {
		t.Fatalf("failed to build server: %v", err)
	}
	return srv
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestServer(t, model.EnvironmentDevelopment)

	for _, path := range []string{"/health", "/ready", "/live"} {
		w := httptest.NewRecorder()
		srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusOK {
			t.Errorf("%s: got %d, want 200", path, w.Code)
		}
	}
}

func TestSwaggerHiddenInProduction(t *testing.T) {
	tests := []struct {
		name string
		env  model.Environment
		want int
	}{
		{name: "Development serves docs", env: model.EnvironmentDevelopment, want: http.StatusOK},
		{name: "Production hides docs", env: model.EnvironmentProduction, want: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, tt.env)

			w := httptest.NewRecorder()
			srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))
			if w.Code != tt.want {
				t.Errorf("got %d, want %d", w.Code, tt.want)
			}
		})
	}
}
