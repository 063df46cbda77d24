package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/meltemi-labs/reviewboost/internal/llm"
)

func TestSecureHeaders(t *testing.T) {
	srv := newTestServer(t, llm.NewMockLLM("x"))
	handler := srv.Handler()

	rec := doJSON(t, handler, http.MethodGet, "/api/health", "")

	want := map[string]string{
		"X-Content-Type-Options":       "nosniff",
		"X-Frame-Options":              "DENY",
		"Referrer-Policy":              "no-referrer",
		"Cross-Origin-Resource-Policy": "same-origin",
	}
	for header, value := range want {
		if got := rec.Header().Get(header); got != value {
			t.Errorf("%s = %q, want %q", header, got, value)
		}
	}
}

func TestIPLimiter_SeparateBuckets(t *testing.T) {
	l := newIPLimiter(1, time.Minute)

	if !l.allow("10.0.0.1") {
		t.Fatal("first request from 10.0.0.1 should pass")
	}
	if l.allow("10.0.0.1") {
		t.Error("second request from 10.0.0.1 should be throttled")
	}
	if !l.allow("10.0.0.2") {
		t.Error("another client must have its own bucket")
	}
}

func TestRateLimit_ExhaustedBucketAnswers429(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/ping", rateLimit(newIPLimiter(2, time.Minute)), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, rec.Code)
		}
	}

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after the bucket is drained, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["error"] == nil {
		t.Error("throttled response missing error field")
	}
}
