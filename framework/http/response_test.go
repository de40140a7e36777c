package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	gohttp "github.com/km-arc/go-scoped/framework/http"
)

// ── helpers ──────────────────────────────────────────────────────────────────

func newResponse(t *testing.T) (*gohttp.Response, *httptest.ResponseRecorder) {
	t.Helper()
	rr := httptest.NewRecorder()
	return gohttp.NewResponse(rr), rr
}

func decodeJSON(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &m); err != nil {
		t.Fatalf("invalid JSON body %q: %v", rr.Body.String(), err)
	}
	return m
}

// ── JSON ─────────────────────────────────────────────────────────────────────

func TestJSON_SetsStatusAndContentType(t *testing.T) {
	res, rr := newResponse(t)
	res.JSON(http.StatusTeapot, map[string]any{"x": 1})

	if rr.Code != http.StatusTeapot {
		t.Errorf("status: got %d, want 418", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type: got %q", ct)
	}
}

func TestSuccess_WrapsInDataEnvelope(t *testing.T) {
	res, rr := newResponse(t)
	res.Success(map[string]any{"id": 1})

	if rr.Code != http.StatusOK {
		t.Errorf("status: got %d, want 200", rr.Code)
	}
	body := decodeJSON(t, rr)
	if _, ok := body["data"]; !ok {
		t.Errorf("body %v should have a data envelope", body)
	}
}

func TestCreated_Returns201(t *testing.T) {
	res, rr := newResponse(t)
	res.Created(map[string]any{"id": 1})

	if rr.Code != http.StatusCreated {
		t.Errorf("status: got %d, want 201", rr.Code)
	}
}

func TestNoContent_Returns204EmptyBody(t *testing.T) {
	res, rr := newResponse(t)
	res.NoContent()

	if rr.Code != http.StatusNoContent {
		t.Errorf("status: got %d, want 204", rr.Code)
	}
	if rr.Body.Len() != 0 {
		t.Errorf("body should be empty, got %q", rr.Body.String())
	}
}

// ── Errors ───────────────────────────────────────────────────────────────────

func TestError_SendsMessage(t *testing.T) {
	res, rr := newResponse(t)
	res.Error(http.StatusBadRequest, "bad input")

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want 400", rr.Code)
	}
	if got := decodeJSON(t, rr)["message"]; got != "bad input" {
		t.Errorf("message: got %v, want %q", got, "bad input")
	}
}

func TestNotFound_DefaultMessage(t *testing.T) {
	res, rr := newResponse(t)
	res.NotFound()

	if rr.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", rr.Code)
	}
	if got := decodeJSON(t, rr)["message"]; got != "Not found." {
		t.Errorf("message: got %v", got)
	}
}

func TestServerError_CustomMessage(t *testing.T) {
	res, rr := newResponse(t)
	res.ServerError("it broke")

	if rr.Code != http.StatusInternalServerError {
		t.Errorf("status: got %d, want 500", rr.Code)
	}
	if got := decodeJSON(t, rr)["message"]; got != "it broke" {
		t.Errorf("message: got %v, want %q", got, "it broke")
	}
}
