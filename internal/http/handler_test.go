package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"task-track-service.com/task-track-service/internal/cache"
	dto "task-track-service.com/task-track-service/internal/data_models"
	httpapi "task-track-service.com/task-track-service/internal/http"
	model "task-track-service.com/task-track-service/internal/models"
	repository "task-track-service.com/task-track-service/internal/repositories"
	"task-track-service.com/task-track-service/internal/services"
)

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Task{}))

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	repo := repository.NewTaskRepository(db)
	service := services.NewTaskService(repo, cache.NewNoopTaskCache())

	e := echo.New()
	httpapi.Register(e, httpapi.NewHandler(service), 10000)
	return e
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func createTask(t *testing.T, e *echo.Echo, body string) model.Task {
	t.Helper()

	rec := doJSON(e, http.MethodPost, "/tasks", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	var envelope dto.TaskEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Equal(t, "task created", envelope.Message)
	return envelope.Task
}

func listTasks(t *testing.T, e *echo.Echo) []model.Task {
	t.Helper()

	rec := doJSON(e, http.MethodGet, "/tasks", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var tasks []model.Task
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tasks))
	return tasks
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error
}

func TestCreateTask_Defaults(t *testing.T) {
	e := newTestServer(t)

	task := createTask(t, e, `{"title":"Buy milk"}`)
	require.NotZero(t, task.ID)
	require.Equal(t, "Buy milk", task.Title)
	require.Nil(t, task.Description)
	require.Equal(t, "pending", string(task.Status))
	require.NotEmpty(t, task.CreatedAt)
}

func TestCreateTask_GetReturnsSameTask(t *testing.T) {
	e := newTestServer(t)

	created := createTask(t, e, `{"title":"Buy milk","description":"two liters","status":"done"}`)

	rec := doJSON(e, http.MethodGet, "/tasks/"+itoa(created.ID), "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got model.Task
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, created, got)
}

func TestCreateTask_MissingTitle(t *testing.T) {
	e := newTestServer(t)

	for _, body := range []string{`{}`, `{"title":""}`, `{"title":"   "}`, `{"description":"no title"}`} {
		rec := doJSON(e, http.MethodPost, "/tasks", body)
		require.Equal(t, http.StatusBadRequest, rec.Code, "body: %s", body)
		require.Equal(t, "title is required", errorBody(t, rec))
	}

	require.Len(t, listTasks(t, e), 0)
}

func TestCreateTask_MalformedJSON(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/tasks", `{"title": "broken"`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "invalid JSON payload", errorBody(t, rec))
}

func TestCreateTask_RequiresJSONContentType(t *testing.T) {
	e := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/tasks", strings.NewReader(`{"title":"x"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMETextPlain)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "invalid JSON payload", errorBody(t, rec))
}

func TestCreateTask_InvalidStatus(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/tasks", `{"title":"x","status":"blocked"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "status must be one of: pending, done", errorBody(t, rec))
}

func TestListTasks_EmptyIsArray(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/tasks", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "[]\n", rec.Body.String())
}

func TestListTasks_OrderedByID(t *testing.T) {
	e := newTestServer(t)

	createTask(t, e, `{"title":"a"}`)
	createTask(t, e, `{"title":"b"}`)
	createTask(t, e, `{"title":"c"}`)

	tasks := listTasks(t, e)
	require.Len(t, tasks, 3)
	for i := 1; i < len(tasks); i++ {
		require.Greater(t, tasks[i].ID, tasks[i-1].ID)
	}
}

func TestUpdateTask_StatusOnly(t *testing.T) {
	e := newTestServer(t)

	created := createTask(t, e, `{"title":"Buy milk","description":"two liters"}`)

	rec := doJSON(e, http.MethodPut, "/tasks/"+itoa(created.ID), `{"status":"done"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope dto.TaskEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Equal(t, "task updated", envelope.Message)
	require.Equal(t, "done", string(envelope.Task.Status))
	require.Equal(t, "Buy milk", envelope.Task.Title)
	require.NotNil(t, envelope.Task.Description)
	require.Equal(t, "two liters", *envelope.Task.Description)
	require.Equal(t, created.CreatedAt, envelope.Task.CreatedAt)
}

func TestUpdateTask_ClearsDescriptionWithNull(t *testing.T) {
	e := newTestServer(t)

	created := createTask(t, e, `{"title":"task","description":"to clear"}`)

	rec := doJSON(e, http.MethodPut, "/tasks/"+itoa(created.ID), `{"description":null}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope dto.TaskEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Nil(t, envelope.Task.Description)
}

func TestUpdateTask_NoFields(t *testing.T) {
	e := newTestServer(t)

	created := createTask(t, e, `{"title":"unchanged"}`)

	for _, body := range []string{`{}`, `{"unknown":"key"}`, ""} {
		rec := doJSON(e, http.MethodPut, "/tasks/"+itoa(created.ID), body)
		require.Equal(t, http.StatusBadRequest, rec.Code, "body: %q", body)
		require.Equal(t, "no updatable fields provided", errorBody(t, rec))
	}

	tasks := listTasks(t, e)
	require.Len(t, tasks, 1)
	require.Equal(t, "unchanged", tasks[0].Title)
}

func TestUpdateTask_EmptyTitleRejected(t *testing.T) {
	e := newTestServer(t)

	created := createTask(t, e, `{"title":"keep me"}`)

	rec := doJSON(e, http.MethodPut, "/tasks/"+itoa(created.ID), `{"title":""}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "title is required", errorBody(t, rec))
}

func TestUpdateTask_NotFound(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPut, "/tasks/999", `{"status":"done"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "task not found", errorBody(t, rec))
}

func TestDeleteTask_ThenGet(t *testing.T) {
	e := newTestServer(t)

	created := createTask(t, e, `{"title":"ephemeral"}`)

	rec := doJSON(e, http.MethodDelete, "/tasks/"+itoa(created.ID), "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Empty(t, rec.Body.String())

	rec = doJSON(e, http.MethodGet, "/tasks/"+itoa(created.ID), "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "task not found", errorBody(t, rec))
}

func TestDeleteTask_NotFound(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodDelete, "/tasks/123", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "task not found", errorBody(t, rec))
}

func TestRouting_NonNumericID(t *testing.T) {
	e := newTestServer(t)

	for _, path := range []string{"/tasks/abc", "/tasks/12x", "/tasks/-1"} {
		rec := doJSON(e, http.MethodGet, path, "")
		require.Equal(t, http.StatusNotFound, rec.Code, "path: %s", path)
		require.Equal(t, "route not found", errorBody(t, rec))
	}
}

func TestRouting_OverflowingNumericID(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/tasks/99999999999999999999", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "task not found", errorBody(t, rec))
}

func TestRouting_UnknownPath(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/projects", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "route not found", errorBody(t, rec))
}

func TestRouting_UnsupportedMethodOnResource(t *testing.T) {
	e := newTestServer(t)

	created := createTask(t, e, `{"title":"x"}`)

	rec := doJSON(e, http.MethodPost, "/tasks/"+itoa(created.ID), `{"title":"y"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "route not found", errorBody(t, rec))
}

func TestRouting_TrailingSlash(t *testing.T) {
	e := newTestServer(t)

	created := createTask(t, e, `{"title":"slashed"}`)

	rec := doJSON(e, http.MethodGet, "/tasks/", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodGet, "/tasks/"+itoa(created.ID)+"/", "")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	e := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/tasks", nil)
	req.Header.Set(echo.HeaderOrigin, "http://example.com")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
