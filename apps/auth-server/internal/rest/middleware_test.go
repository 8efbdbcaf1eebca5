package rest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/oyaguma3/portauth-radius-server/pkg/httputil"
)

func TestTraceIDMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		wantSame bool
	}{
		{"header present", "trace-xyz", true},
		{"header absent", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			router := gin.New()
			router.Use(TraceIDMiddleware())
			router.GET("/t", func(c *gin.Context) {
				got = c.GetString(httputil.TraceIDKey)
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/t", nil)
			if tt.header != "" {
				req.Header.Set("X-Trace-ID", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if got == "" {
				t.Fatal("trace id not set")
			}
			if tt.wantSame && got != tt.header {
				t.Errorf("trace id = %q, want %q", got, tt.header)
			}
			if w.Header().Get("X-Trace-ID") != got {
				t.Errorf("response X-Trace-ID = %q, want %q", w.Header().Get("X-Trace-ID"), got)
			}
		})
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(TraceIDMiddleware(), RecoveryMiddleware())
	router.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	req.Header.Set("X-Trace-ID", "trace-p")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("Status code = %d, want %d", w.Code, http.StatusInternalServerError)
	}
	var problem httputil.ProblemDetail
	if err := json.Unmarshal(w.Body.Bytes(), &problem); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if problem.Instance != "trace-p" {
		t.Errorf("Instance = %q, want %q", problem.Instance, "trace-p")
	}
}

func TestNewServer(t *testing.T) {
	s := NewServer(":8080", gin.New())
	if s.Addr() != ":8080" {
		t.Errorf("Addr() = %q, want %q", s.Addr(), ":8080")
	}
}
