package http_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	httpapi "todo-service.com/todo-service/internal/http"
	model "todo-service.com/todo-service/internal/models"
	repository "todo-service.com/todo-service/internal/repositories"
	"todo-service.com/todo-service/internal/services"
)

func newTestServer(t *testing.T) (*echo.Echo, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to connect database")
	require.NoError(t, db.AutoMigrate(&model.Todo{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	repo := repository.NewTodoRepository(db)
	svc := services.NewTodoService(repo)

	e := echo.New()
	httpapi.Register(e, httpapi.NewHandler(svc), zap.NewNop())

	return e, db
}

func doRequest(t *testing.T, e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestTodoLifecycleEndToEnd(t *testing.T) {
	e, _ := newTestServer(t)

	// create
	rec := doRequest(t, e, http.MethodPost, "/todos",
		`{"time":"2024-01-01T10:00:00","description":"buy milk"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t,
		`{"id":1,"time":"2024-01-01T10:00:00","description":"buy milk"}`,
		rec.Body.String())

	// list
	rec = doRequest(t, e, http.MethodGet, "/todos", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`[{"id":1,"time":"2024-01-01T10:00:00","description":"buy milk"}]`,
		rec.Body.String())

	// full replacement keeps the id
	rec = doRequest(t, e, http.MethodPut, "/todos/1",
		`{"time":"2024-01-01T10:00:00","description":"buy bread"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"id":1,"time":"2024-01-01T10:00:00","description":"buy bread"}`,
		rec.Body.String())

	// delete has an empty body
	rec = doRequest(t, e, http.MethodDelete, "/todos/1", "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	// the id is gone for good
	rec = doRequest(t, e, http.MethodGet, "/todos/1", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Todo not found"}`, rec.Body.String())

	// update after delete reports not-found, not a validation failure
	rec = doRequest(t, e, http.MethodPut, "/todos/1", `{"time":"x","description":"y"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Todo not found"}`, rec.Body.String())

	// missing fields short-circuit before the store
	rec = doRequest(t, e, http.MethodPost, "/todos", `{}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid todo data"}`, rec.Body.String())
}

func TestListEmptyStore(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doRequest(t, e, http.MethodGet, "/todos", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestCreateRejectsMalformedJSON(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doRequest(t, e, http.MethodPost, "/todos", `{"time":`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid todo data"}`, rec.Body.String())
}

func TestCreateIgnoresClientSuppliedID(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doRequest(t, e, http.MethodPost, "/todos",
		`{"id":99,"time":"2024-01-01T10:00:00","description":"buy milk"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t,
		`{"id":1,"time":"2024-01-01T10:00:00","description":"buy milk"}`,
		rec.Body.String())
}

func TestCreateRejectsOversizeDescription(t *testing.T) {
	e, _ := newTestServer(t)

	long := strings.Repeat("x", 256)
	rec := doRequest(t, e, http.MethodPost, "/todos",
		`{"time":"2024-01-01T10:00:00","description":"`+long+`"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid todo data"}`, rec.Body.String())
}

func TestNonIntegerIDIsNotFound(t *testing.T) {
	e, _ := newTestServer(t)

	for _, target := range []string{"/todos/abc", "/todos/-1", "/todos/1.5"} {
		rec := doRequest(t, e, http.MethodGet, target, "")
		assert.Equal(t, http.StatusNotFound, rec.Code, "GET %s", target)
	}
}

func TestStorageFailureMapsToInternalError(t *testing.T) {
	e, db := newTestServer(t)

	// kill the store out from under the repository
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	rec := doRequest(t, e, http.MethodGet, "/todos", "")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
}

func TestGetSupportsIDsBeyond32Bits(t *testing.T) {
	e, db := newTestServer(t)

	row := &model.Todo{
		ID:          1 << 33,
		Time:        "2024-01-01T10:00:00",
		Description: "big id",
	}
	require.NoError(t, db.Create(row).Error)

	rec := doRequest(t, e, http.MethodGet, "/todos/8589934592", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"id":8589934592,"time":"2024-01-01T10:00:00","description":"big id"}`,
		rec.Body.String())
}

func TestUpdateValidationPrecedesNotFound(t *testing.T) {
	e, _ := newTestServer(t)

	// no row 5 exists, but the empty body must fail first without
	// touching the store
	rec := doRequest(t, e, http.MethodPut, "/todos/5", `{}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid todo data"}`, rec.Body.String())
}
