package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

// 仅覆盖进入存储层之前就被拒绝的请求,不依赖数据库
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewContributionHandler()
	r.POST("/api/contributions", h.Create)
	r.GET("/api/contributions/:id", h.Detail)
	r.POST("/api/contributions/:id/like", h.Like)
	return r
}

type validationResponse struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors"`
}

func TestCreateRejectsMissingTitle(t *testing.T) {
	r := newTestRouter()

	body := `{"content":"<p>Hi</p>","category":"story"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/contributions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", w.Code)
	}

	var resp validationResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Message != "Validation error" {
		t.Errorf("Expected 'Validation error', got %q", resp.Message)
	}

	// 错误必须点名 title 字段
	found := false
	for _, fe := range resp.Errors {
		if fe.Field == "title" {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected a field error naming 'title', got %v", resp.Errors)
	}
}

func TestCreateRejectsUnknownCategory(t *testing.T) {
	r := newTestRouter()

	body := `{"title":"My Story","content":"<p>Hi</p>","category":"rant"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/contributions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", w.Code)
	}

	var resp validationResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	found := false
	for _, fe := range resp.Errors {
		if fe.Field == "category" {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected a field error naming 'category', got %v", resp.Errors)
	}
}

func TestCreateRejectsMalformedJSON(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/contributions", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for malformed JSON, got %d", w.Code)
	}
}

func TestDetailRejectsNonNumericID(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/contributions/abc", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for non-numeric id, got %d", w.Code)
	}
}

func TestLikeRejectsNonNumericID(t *testing.T) {
	r := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/contributions/abc/like", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for non-numeric id, got %d", w.Code)
	}
}
