package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/yungbote/careerpath-backend/internal/modules/assessment"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
)

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	t.Cleanup(log.Sync)
	return log
}

func TestNewIntakeHandlerWithDeps(t *testing.T) {
	log := newTestLogger(t)
	h := NewIntakeHandlerWithDeps(IntakeHandlerDeps{Log: log})
	if h == nil {
		t.Fatal("expected non-nil handler")
	}
	if NewIntakeHandlerWithDeps(IntakeHandlerDeps{}).log == nil {
		t.Fatal("expected nop logger when none is given")
	}
}

func TestReadyToleratesRedisOutage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	t.Cleanup(func() { _ = rdb.Close() })

	r := gin.New()
	r.GET("/readyz", NewHealthHandler(nil, rdb).Ready)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body.String())
	}
}

func TestRequestUserRejectsAnonymous(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/assessments/latest", NewAssessmentHandler(newTestLogger(t), assessment.New(assessment.UsecasesDeps{})).Latest)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/assessments/latest", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d, want 401", rec.Code)
	}
}
