package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"chatdb/internal/services"
	sentinal_errors "chatdb/pkg/errors"
	"chatdb/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"unauthorized", sentinal_errors.ErrUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"access denied", sentinal_errors.ErrAccessDenied, http.StatusForbidden, "ACCESS_DENIED"},
		{"reserved field", fmt.Errorf("%w: id", sentinal_errors.ErrReservedField), http.StatusBadRequest, "INVALID_REQUEST"},
		{"unsupported backend", fmt.Errorf("%w [oracle]", sentinal_errors.ErrUnsupportedBackend), http.StatusInternalServerError, "UNSUPPORTED_BACKEND"},
		{"conflict", &services.StoreError{Op: "add message", Err: errors.Join(sentinal_errors.ErrConflict, errors.New("dup"))}, http.StatusConflict, "CONFLICT"},
		{"store error", &services.StoreError{Op: "get messages", Err: errors.New("connection refused")}, http.StatusServiceUnavailable, "STORE_ERROR"},
		{"anything else", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, code := classify(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, code)
		})
	}
}

func TestErrorHandler_RendersLastError(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware(), ErrorHandler(logger.NewNop()))
	r.GET("/denied", func(c *gin.Context) {
		_ = c.Error(sentinal_errors.ErrAccessDenied)
	})
	r.GET("/ok", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/denied", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "ACCESS_DENIED", body["code"])

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRequestIDMiddleware_KeepsIncomingID(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware())
	var seen any
	r.GET("/", func(c *gin.Context) {
		seen = c.Request.Context().Value(logger.RequestIdKey)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-123", w.Header().Get(RequestIDHeader))
	assert.Equal(t, "req-123", seen)
}

func TestExtractBearer(t *testing.T) {
	for header, want := range map[string]string{
		"Bearer abc":  "abc",
		"bearer  abc": "abc",
		"Basic abc":   "",
		"abc":         "",
		"":            "",
	} {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		c.Request.Header.Set("Authorization", header)
		assert.Equal(t, want, extractBearer(c), header)
	}
}
