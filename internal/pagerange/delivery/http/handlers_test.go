package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pagination-srv/internal/middleware"
	"pagination-srv/internal/pagerange/usecase"
	"pagination-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	l := log.Init(log.ZapConfig{Level: "error", Mode: "debug", Encoding: "console"})
	uc := usecase.New(l, usecase.DefaultConfig())
	h := New(l, uc, nil)

	r := gin.New()
	h.RegisterRoutes(r.Group(""), middleware.Middleware{})
	return r
}

func doRequest(t *testing.T, r *gin.Engine, target string) (*httptest.ResponseRecorder, map[string]json.RawMessage) {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	r.ServeHTTP(w, req)

	var body struct {
		ErrorCode int             `json:"error_code"`
		Message   string          `json:"message"`
		Data      json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body %q: %v", w.Body.String(), err)
	}

	data := map[string]json.RawMessage{}
	if len(body.Data) > 0 {
		if err := json.Unmarshal(body.Data, &data); err != nil {
			t.Fatalf("invalid data payload %q: %v", body.Data, err)
		}
	}
	return w, data
}

func TestComputeHandler(t *testing.T) {
	r := newTestRouter()

	t.Run("computes markers", func(t *testing.T) {
		w, data := doRequest(t, r, "/api/v1/page-range?current_page=5&total_pages=10")
		if w.Code != http.StatusOK {
			t.Fatalf("status mismatch: got %d, want %d (body %s)", w.Code, http.StatusOK, w.Body.String())
		}

		var markers []struct {
			Type string `json:"type"`
			Page int    `json:"page"`
		}
		if err := json.Unmarshal(data["markers"], &markers); err != nil {
			t.Fatalf("invalid markers payload: %v", err)
		}
		if len(markers) != 9 {
			t.Fatalf("marker count mismatch: got %d, want 9 (%v)", len(markers), markers)
		}
		if markers[0].Type != "page" || markers[0].Page != 1 {
			t.Errorf("first marker mismatch: %+v", markers[0])
		}
		if markers[1].Type != "page" || markers[1].Page != 2 {
			t.Errorf("second marker should fill the short gap: %+v", markers[1])
		}
		if markers[7].Type != "ellipsis" || markers[7].Page != 0 {
			t.Errorf("eighth marker should be a bare ellipsis: %+v", markers[7])
		}
		if markers[8].Page != 10 {
			t.Errorf("last marker mismatch: %+v", markers[8])
		}
	})

	t.Run("explicit policy", func(t *testing.T) {
		w, data := doRequest(t, r, "/api/v1/page-range?current_page=2&total_pages=10&policy=clamped-window")
		if w.Code != http.StatusOK {
			t.Fatalf("status mismatch: got %d, want %d (body %s)", w.Code, http.StatusOK, w.Body.String())
		}
		var policy string
		if err := json.Unmarshal(data["policy"], &policy); err != nil {
			t.Fatalf("invalid policy payload: %v", err)
		}
		if policy != "clamped-window" {
			t.Errorf("policy mismatch: got %q, want %q", policy, "clamped-window")
		}
	})

	t.Run("current page beyond total", func(t *testing.T) {
		w, _ := doRequest(t, r, "/api/v1/page-range?current_page=7&total_pages=5")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status mismatch: got %d, want %d (body %s)", w.Code, http.StatusBadRequest, w.Body.String())
		}
	})

	t.Run("missing current page", func(t *testing.T) {
		w, _ := doRequest(t, r, "/api/v1/page-range?total_pages=5")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status mismatch: got %d, want %d (body %s)", w.Code, http.StatusBadRequest, w.Body.String())
		}
	})

	t.Run("unknown policy rejected at binding", func(t *testing.T) {
		w, _ := doRequest(t, r, "/api/v1/page-range?current_page=1&total_pages=5&policy=zigzag")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status mismatch: got %d, want %d (body %s)", w.Code, http.StatusBadRequest, w.Body.String())
		}
	})
}

func TestWidgetHandler(t *testing.T) {
	r := newTestRouter()

	t.Run("derives page count", func(t *testing.T) {
		w, data := doRequest(t, r, "/api/v1/page-range/widget?current_page=2&total_items=45&page_size=15")
		if w.Code != http.StatusOK {
			t.Fatalf("status mismatch: got %d, want %d (body %s)", w.Code, http.StatusOK, w.Body.String())
		}

		var p struct {
			TotalPages int  `json:"total_pages"`
			HasNext    bool `json:"has_next"`
			HasPrev    bool `json:"has_prev"`
		}
		if err := json.Unmarshal(data["paginator"], &p); err != nil {
			t.Fatalf("invalid paginator payload: %v", err)
		}
		if p.TotalPages != 3 {
			t.Errorf("total_pages mismatch: got %d, want 3", p.TotalPages)
		}
		if !p.HasNext || !p.HasPrev {
			t.Errorf("has_next/has_prev mismatch: got %v/%v, want true/true", p.HasNext, p.HasPrev)
		}

		var markers []struct {
			Type string `json:"type"`
			Page int    `json:"page"`
		}
		if err := json.Unmarshal(data["markers"], &markers); err != nil {
			t.Fatalf("invalid markers payload: %v", err)
		}
		if len(markers) != 3 {
			t.Fatalf("marker count mismatch: got %d, want 3 (%v)", len(markers), markers)
		}
	})

	t.Run("current page beyond derived total", func(t *testing.T) {
		w, _ := doRequest(t, r, "/api/v1/page-range/widget?current_page=9&total_items=45&page_size=15")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status mismatch: got %d, want %d (body %s)", w.Code, http.StatusBadRequest, w.Body.String())
		}
	})
}
