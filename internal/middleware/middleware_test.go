package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"calendar-assistant/pkg/log"
)

func newTestRouter(mw Middleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw.Session())
	r.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, GetScope(c).SessionID)
	})
	r.POST("/limited", mw.RateLimit(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestSession_MintsAndEchoes(t *testing.T) {
	r := newTestRouter(New(log.NewNop(), Config{SessionTTL: time.Hour}))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))

	id := w.Body.String()
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("expected a minted uuid, got %q", id)
	}
	if w.Header().Get(SessionHeader) != id {
		t.Errorf("header = %q, want %q", w.Header().Get(SessionHeader), id)
	}

	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != DefaultCookieName || cookies[0].Value != id || !cookies[0].HttpOnly {
		t.Errorf("unexpected cookies: %+v", cookies)
	}
}

func TestSession_ReusesValidIDs(t *testing.T) {
	r := newTestRouter(New(log.NewNop(), Config{CookieName: "sid"}))
	known := uuid.NewString()

	tests := []struct {
		name  string
		setup func(req *http.Request)
		reuse bool
	}{
		{name: "Header", setup: func(req *http.Request) { req.Header.Set(SessionHeader, known) }, reuse: true},
		{name: "Cookie", setup: func(req *http.Request) { req.AddCookie(&http.Cookie{Name: "sid", Value: known}) }, reuse: true},
		{name: "Garbage header", setup: func(req *http.Request) { req.Header.Set(SessionHeader, "../../etc") }, reuse: false},
		{name: "Other cookie name", setup: func(req *http.Request) { req.AddCookie(&http.Cookie{Name: "cal_session", Value: known}) }, reuse: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			tt.setup(req)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if got := w.Body.String() == known; got != tt.reuse {
				t.Errorf("reused = %v, want %v (body %q)", got, tt.reuse, w.Body.String())
			}
		})
	}
}

func TestRateLimit(t *testing.T) {
	limited := func(r *gin.Engine, remoteAddr string, setup func(req *http.Request)) int {
		req := httptest.NewRequest(http.MethodPost, "/limited", nil)
		req.RemoteAddr = remoteAddr
		if setup != nil {
			setup(req)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	forwarded := 0
	tests := []struct {
		name  string
		setup func(req *http.Request)
	}{
		{name: "No cookie", setup: nil},
		{name: "Same session", setup: func(req *http.Request) { req.Header.Set(SessionHeader, "7f1c3a52-9d1e-4c1a-8f0e-2b8a4f6c9d10") }},
		{name: "Fresh session each call", setup: func(req *http.Request) { req.Header.Set(SessionHeader, uuid.NewString()) }},
		{name: "Spoofed forwarded for", setup: func(req *http.Request) {
			forwarded++
			req.Header.Set("X-Forwarded-For", fmt.Sprintf("203.0.113.%d", forwarded))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(New(log.NewNop(), Config{ExtractPerMin: 1, Burst: 2}))
			_ = r.SetTrustedProxies(nil)

			codes := make([]int, 0, 3)
			for i := 0; i < 3; i++ {
				codes = append(codes, limited(r, "10.0.0.1:4000", tt.setup))
			}
			if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
				t.Errorf("codes = %v, want [200 200 429]", codes)
			}

			// Another client has its own bucket.
			if code := limited(r, "10.0.0.2:4000", tt.setup); code != http.StatusOK {
				t.Errorf("other client code = %d", code)
			}
		})
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	r := newTestRouter(New(log.NewNop(), Config{}))
	for i := 0; i < 20; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/limited", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d code = %d", i, w.Code)
		}
	}
}

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// No origins: handler is returned as is.
	plain := New(log.NewNop(), Config{}).CORS(next)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://evil.test")
	w := httptest.NewRecorder()
	plain.ServeHTTP(w, req)
	if w.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Errorf("unexpected CORS header without configuration")
	}

	h := New(log.NewNop(), Config{AllowedOrigins: []string{"http://app.test"}}).CORS(next)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://app.test")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://app.test" {
		t.Errorf("Allow-Origin = %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://evil.test")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("disallowed origin got Allow-Origin = %q", got)
	}
}
