package http_test

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	gohttp "github.com/km-arc/go-scoped/framework/http"
)

// ── Bind ─────────────────────────────────────────────────────────────────────

func TestBind_JSONBody(t *testing.T) {
	raw := httptest.NewRequest("POST", "/posts", strings.NewReader(`{"title":"Hello"}`))
	raw.Header.Set("Content-Type", "application/json")

	var body struct {
		Title string `json:"title"`
	}
	if err := gohttp.NewRequest(raw).Bind(&body); err != nil {
		t.Fatalf("Bind: %v", err)
	}
	if body.Title != "Hello" {
		t.Errorf("Title: got %q, want %q", body.Title, "Hello")
	}
}

func TestBind_EmptyJSONBodyFails(t *testing.T) {
	raw := httptest.NewRequest("POST", "/posts", strings.NewReader(""))
	raw.Header.Set("Content-Type", "application/json")

	var body struct{}
	if err := gohttp.NewRequest(raw).Bind(&body); err == nil {
		t.Error("Bind should reject an empty body")
	}
}

func TestBind_FormBody(t *testing.T) {
	form := url.Values{"title": {"Hello"}}
	raw := httptest.NewRequest("POST", "/posts", strings.NewReader(form.Encode()))
	raw.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var body struct {
		Title string `json:"title"`
	}
	if err := gohttp.NewRequest(raw).Bind(&body); err != nil {
		t.Fatalf("Bind: %v", err)
	}
	if body.Title != "Hello" {
		t.Errorf("Title: got %q, want %q", body.Title, "Hello")
	}
}

// ── Input helpers ────────────────────────────────────────────────────────────

func TestQuery_WithFallback(t *testing.T) {
	raw := httptest.NewRequest("GET", "/?page=3", nil)
	req := gohttp.NewRequest(raw)

	if got := req.Query("page"); got != "3" {
		t.Errorf("page: got %q, want %q", got, "3")
	}
	if got := req.Query("limit", "10"); got != "10" {
		t.Errorf("limit fallback: got %q, want %q", got, "10")
	}
}

func TestBearerToken(t *testing.T) {
	raw := httptest.NewRequest("GET", "/", nil)
	raw.Header.Set("Authorization", "Bearer abc123")

	if got := gohttp.NewRequest(raw).BearerToken(); got != "abc123" {
		t.Errorf("got %q, want %q", got, "abc123")
	}
}

func TestBearerToken_MissingHeader(t *testing.T) {
	raw := httptest.NewRequest("GET", "/", nil)
	if got := gohttp.NewRequest(raw).BearerToken(); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}
