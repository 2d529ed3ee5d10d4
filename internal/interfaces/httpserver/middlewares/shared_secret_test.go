package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newSecretEngine(secret string) *gin.Engine {
	engine := gin.New()
	engine.POST("/guarded", SharedSecret(secret), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return engine
}

func TestSharedSecret(t *testing.T) {
	tests := []struct {
		name       string
		secret     string
		authHeader string
		wantStatus int
	}{
		{name: "no secret configured is open", secret: "", authHeader: "", wantStatus: http.StatusNoContent},
		{name: "valid token", secret: "hunter2", authHeader: "Bearer hunter2", wantStatus: http.StatusNoContent},
		{name: "scheme case-insensitive", secret: "hunter2", authHeader: "bearer hunter2", wantStatus: http.StatusNoContent},
		{name: "missing header", secret: "hunter2", authHeader: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong token", secret: "hunter2", authHeader: "Bearer nope", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", secret: "hunter2", authHeader: "Basic hunter2", wantStatus: http.StatusUnauthorized},
		{name: "token without scheme", secret: "hunter2", authHeader: "hunter2", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := newSecretEngine(tt.secret)
			req := httptest.NewRequest(http.MethodPost, "/guarded", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()
			engine.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	engine := gin.New()
	engine.Use(RequestID())
	engine.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, RequestIDFromContext(c))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	generated := rec.Header().Get("X-Request-Id")
	if generated == "" {
		t.Fatal("no request id generated")
	}
	if rec.Body.String() != generated {
		t.Errorf("context id %q != header id %q", rec.Body.String(), generated)
	}

	// Caller-supplied ids pass through untouched.
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "fixed-id")
	rec = httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	if rec.Header().Get("X-Request-Id") != "fixed-id" {
		t.Errorf("request id = %q, want fixed-id", rec.Header().Get("X-Request-Id"))
	}
}
