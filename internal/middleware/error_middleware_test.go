package middleware_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/devcamper/internal/app/models/dto"
	"github.com/yigit/devcamper/internal/middleware"
	"github.com/yigit/devcamper/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestResolveError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{
			name:    "malformed id",
			err:     &apperrors.MalformedIDError{Value: "abc"},
			status:  http.StatusNotFound,
			message: "Resource with id: abc not found",
		},
		{
			name: "malformed id from the database",
			err: fmt.Errorf("error fetching: %w", &pgconn.PgError{
				Code:    "22P02",
				Message: `invalid input syntax for type uuid: "xyz"`,
			}),
			status:  http.StatusNotFound,
			message: "Resource with id: xyz not found",
		},
		{
			name:    "duplicate key",
			err:     &pgconn.PgError{Code: "23505", ConstraintName: "bootcamps_name_key"},
			status:  http.StatusBadRequest,
			message: "Duplicate field value entered",
		},
		{
			name:    "check constraint",
			err:     &pgconn.PgError{Code: "23514", Message: `new row violates check constraint "courses_weeks_check"`},
			status:  http.StatusBadRequest,
			message: `new row violates check constraint "courses_weeks_check"`,
		},
		{
			name:    "validation",
			err:     apperrors.NewValidationError("Please add a name", "Please add a description"),
			status:  http.StatusBadRequest,
			message: "Please add a name, Please add a description",
		},
		{
			name:    "not found",
			err:     fmt.Errorf("wrapped: %w", apperrors.NewBootcampNotFoundError("42")),
			status:  http.StatusNotFound,
			message: "Bootcamp not found with id: 42",
		},
		{
			name:    "unclassified",
			err:     errors.New("connection refused"),
			status:  http.StatusInternalServerError,
			message: "Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := middleware.ResolveError(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.message, message)
		})
	}
}

func newRouter() *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery(), middleware.RequestLogger(), middleware.ErrorHandler())
	return r
}

func serve(r *gin.Engine, method, path string) (*httptest.ResponseRecorder, dto.ErrorResponse) {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, path, nil))

	var body dto.ErrorResponse
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestHandleWritesErrorEnvelope(t *testing.T) {
	r := newRouter()
	r.GET("/bootcamps/:id", middleware.Handle(func(c *gin.Context) error {
		return apperrors.NewBootcampNotFoundError(c.Param("id"))
	}))

	w, body := serve(r, http.MethodGet, "/bootcamps/123")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, body.Success)
	assert.Equal(t, "Bootcamp not found with id: 123", body.Error)
}

func TestHandleLeavesSuccessAlone(t *testing.T) {
	r := newRouter()
	r.GET("/ok", middleware.Handle(func(c *gin.Context) error {
		c.JSON(http.StatusOK, dto.NewDataResponse("fine"))
		return nil
	}))

	w, _ := serve(r, http.MethodGet, "/ok")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":"fine"}`, w.Body.String())
}

func TestRecovery(t *testing.T) {
	r := newRouter()
	r.GET("/boom", func(c *gin.Context) {
		panic("boom")
	})

	w, body := serve(r, http.MethodGet, "/boom")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.False(t, body.Success)
	assert.Equal(t, "Server Error", body.Error)
}

func TestRequestID(t *testing.T) {
	r := newRouter()
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w, _ := serve(r, http.MethodGet, "/ok")
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-1")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "req-1", w.Header().Get(middleware.RequestIDHeader))
}
