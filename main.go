package main

import (
	"fmt"
	"net/http"
	"sync/atomic"

	"github.com/km-arc/go-scoped/framework/app"
	gohttp "github.com/km-arc/go-scoped/framework/http"
	"github.com/km-arc/go-scoped/framework/routing"
	"github.com/km-arc/go-scoped/framework/service"
)

// Counter is a request-scoped example service: one instance per request
// that touches it, numbered in creation order.
type Counter struct {
	ID int64 `json:"id"`
}

// Services is the application's service catalog.
var Services = service.DefineCatalog(&struct {
	Counter *service.Def[*Counter]
	Greeter *service.Def[func(string) string]
}{})

func main() {
	application := app.New() // loads .env automatically
	r := application.Router

	// ── Factories ────────────────────────────────────────────────────────────

	var created atomic.Int64
	service.Provide(application.Services, Services.Counter, func() *Counter {
		return &Counter{ID: created.Add(1)}
	})

	service.Provide(application.Services, Services.Greeter, func() func(string) string {
		return func(name string) string { return "Hello, " + name + "!" }
	})

	// Route-scoped factory: only POST /posts sees this one.
	application.Services.RegisterRoute("POST", "/posts", "createPost", func() any {
		return func(title string) string { return fmt.Sprintf("Created: %s", title) }
	})

	// ── Routes ───────────────────────────────────────────────────────────────

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		gohttp.NewResponse(w).Success(map[string]any{"message": "Welcome to go-scoped!"})
	})

	// Resolved twice, created once: both reads see the same instance.
	r.Get("/counter", gohttp.Handle(func(w http.ResponseWriter, req *http.Request) error {
		first, err := service.Get(req, Services.Counter)
		if err != nil {
			return err
		}
		second := service.MustGet(req, Services.Counter)
		gohttp.NewResponse(w).Success(map[string]any{
			"first":  first.ID,
			"second": second.ID,
		})
		return nil
	}))

	r.Post("/posts", gohttp.Handle(func(w http.ResponseWriter, req *http.Request) error {
		var body struct {
			Title string `json:"title"`
		}
		if err := gohttp.NewRequest(req).Bind(&body); err != nil {
			gohttp.NewResponse(w).Error(http.StatusBadRequest, err.Error())
			return nil
		}

		create, err := service.ResolveRoute[func(string) string](req, "createPost")
		if err != nil {
			return err
		}
		gohttp.NewResponse(w).Created(map[string]any{"result": create(body.Title)})
		return nil
	}))

	// ── Services surface ─────────────────────────────────────────────────────

	r.Group(func(g *routing.Router) {
		g.Middleware(service.WithServices(Services.Counter, Services.Greeter))

		g.Get("/greet/{name}", gohttp.Handle(func(w http.ResponseWriter, req *http.Request) error {
			greet, err := service.Services(req).Get("greeter")
			if err != nil {
				return err
			}
			gohttp.NewResponse(w).Success(map[string]any{
				"greeting": greet.(func(string) string)(routing.Param(req, "name")),
			})
			return nil
		}))
	})

	application.Run()
}
