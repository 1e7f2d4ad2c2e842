package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"taskboard/internal/middleware"
	"taskboard/internal/model"
	"taskboard/internal/task"
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

// mockUseCase scripts UseCase results and records the last inputs.
type mockUseCase struct {
	submitResult model.Task
	submitErr    error
	lastSubmit   task.SubmitInput

	listResult task.ListOutput
	listErr    error
	lastList   task.ListInput

	updateResult model.Task
	updateErr    error

	statsResult task.StatsOutput
}

func (m *mockUseCase) Submit(ctx context.Context, sc model.Scope, input task.SubmitInput) (model.Task, error) {
	m.lastSubmit = input
	return m.submitResult, m.submitErr
}

func (m *mockUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	m.lastList = input
	return m.listResult, m.listErr
}

func (m *mockUseCase) UpdateStatus(ctx context.Context, sc model.Scope, input task.UpdateStatusInput) (model.Task, error) {
	return m.updateResult, m.updateErr
}

func (m *mockUseCase) UpdateTags(ctx context.Context, sc model.Scope, input task.UpdateTagsInput) (model.Task, error) {
	return m.updateResult, m.updateErr
}

func (m *mockUseCase) UpdateSchedule(ctx context.Context, sc model.Scope, input task.UpdateScheduleInput) (model.Task, error) {
	return m.updateResult, m.updateErr
}

func (m *mockUseCase) Stats(ctx context.Context, sc model.Scope) (task.StatsOutput, error) {
	return m.statsResult, nil
}

// fakeAuth injects a fixed scope without verifying a token.
func fakeAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.SetScope(c, model.Scope{UserID: "user-1", Token: "jwt"})
		c.Next()
	}
}

func newTestRouter(uc task.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(noopLogger{}, uc)

	r := gin.New()
	api := r.Group("/api/v1")
	tasks := api.Group("/tasks", fakeAuth())
	tasks.POST("", h.Submit)
	tasks.GET("", h.List)
	tasks.GET("/stats", h.Stats)
	tasks.PATCH("/:id/status", h.UpdateStatus)
	tasks.PUT("/:id/tags", h.UpdateTags)
	tasks.PUT("/:id/schedule", h.UpdateSchedule)
	return r
}

func TestSubmitHandler(t *testing.T) {
	uc := &mockUseCase{
		submitResult: model.Task{ID: "5", Description: "Buy milk", Category: model.CategoryHome},
	}
	r := newTestRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", strings.NewReader(`{"description": "Buy milk"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", w.Code, w.Body.String())
	}
	if uc.lastSubmit.Description != "Buy milk" {
		t.Errorf("use case got %+v", uc.lastSubmit)
	}

	var resp struct {
		Data struct {
			ID             string `json:"id"`
			ScheduleStatus string `json:"schedule_status"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Data.ID != "5" || resp.Data.ScheduleStatus != "unscheduled" {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestSubmitHandlerMissingDescription(t *testing.T) {
	r := newTestRouter(&mockUseCase{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestSubmitHandlerConflict(t *testing.T) {
	uc := &mockUseCase{submitErr: task.ErrSubmissionInFlight}
	r := newTestRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", strings.NewReader(`{"description": "x"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", w.Code)
	}
}

func TestListHandlerParsesQuery(t *testing.T) {
	uc := &mockUseCase{}
	r := newTestRouter(uc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/tasks?search=rent&tags=bills,%20home&sort=status", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if uc.lastList.Search != "rent" || uc.lastList.Sort != task.SortStatus {
		t.Errorf("use case got %+v", uc.lastList)
	}
	if len(uc.lastList.Tags) != 2 || uc.lastList.Tags[1] != "home" {
		t.Errorf("tags = %v", uc.lastList.Tags)
	}
}

func TestListHandlerRejectsUnknownSort(t *testing.T) {
	r := newTestRouter(&mockUseCase{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/tasks?sort=priority", nil))

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestUpdateScheduleHandlerInvalidWindow(t *testing.T) {
	uc := &mockUseCase{updateErr: task.ErrInvalidSchedule}
	r := newTestRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/tasks/3/schedule", strings.NewReader(`{"end_date": "2024-05-10T10:00:00Z"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestUpdateStatusHandlerNotFound(t *testing.T) {
	uc := &mockUseCase{updateErr: task.ErrTaskNotFound}
	r := newTestRouter(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/tasks/missing/status", strings.NewReader(`{"is_done": true}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
