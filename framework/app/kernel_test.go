package app_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/km-arc/go-scoped/framework/app"
	"github.com/km-arc/go-scoped/framework/service"
)

// The kernel must install the scope and provider middleware before routes,
// so a plain handler can resolve services with no extra wiring.
func TestNew_ServicesResolvableFromHandlers(t *testing.T) {
	application := app.New("testdata/empty.env")

	type session struct{ id int }
	n := 0
	application.Services.RegisterGlobal("session", func() any {
		n++
		return &session{id: n}
	})

	var first, second any
	application.Router.Get("/s", func(w http.ResponseWriter, r *http.Request) {
		first, _ = service.ResolveAt[*session](r, service.AnyRoute, "session")
		second, _ = service.ResolveAt[*session](r, service.AnyRoute, "session")
	})

	rr := httptest.NewRecorder()
	application.Router.ServeHTTP(rr, httptest.NewRequest("GET", "/s", nil))

	if first == nil || first != second {
		t.Error("handler should see one memoized instance per request")
	}
	if n != 1 {
		t.Errorf("factory calls: got %d, want 1", n)
	}
}

func TestNew_TwoApplicationsAreIndependent(t *testing.T) {
	a := app.New("testdata/empty.env")
	b := app.New("testdata/empty.env")

	a.Services.RegisterGlobal("only-in-a", func() any { return "a" })

	var err error
	b.Router.Get("/x", func(w http.ResponseWriter, r *http.Request) {
		_, err = service.ResolveAt[string](r, service.AnyRoute, "only-in-a")
	})

	rr := httptest.NewRecorder()
	b.Router.ServeHTTP(rr, httptest.NewRequest("GET", "/x", nil))

	var notRegistered *service.NotRegisteredError
	if !errors.As(err, &notRegistered) {
		t.Errorf("registration on one application must not leak into another, got %v", err)
	}
}

func TestEnvironmentHelpers(t *testing.T) {
	t.Setenv("APP_ENV", "testing")
	application := app.New("testdata/empty.env")

	if !application.IsTesting() {
		t.Error("IsTesting should be true for APP_ENV=testing")
	}
	if application.IsProduction() {
		t.Error("IsProduction should be false for APP_ENV=testing")
	}
}
