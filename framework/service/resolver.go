package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/km-arc/go-scoped/framework/scope"
)

var (
	providerToken  = scope.NewToken("service.provider")
	instancesToken = scope.NewToken("service.instances")
)

// Middleware attaches the shared Provider to every request's scope so that
// handlers can resolve services. scope.Middleware must be installed first.
func Middleware(p *Provider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if store, ok := scope.FromContext(r.Context()); ok {
				store.Set(providerToken, p)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ── Core algorithm ───────────────────────────────────────────────────────────

// resolve returns the cached instance for id or invokes its factory exactly
// once and caches the result in the request's scope.
func resolve(ctx context.Context, id Identifier) (any, error) {
	store, ok := scope.FromContext(ctx)
	if !ok || !store.Has(providerToken) {
		return nil, ErrProviderMissing
	}
	return resolveIn(store, store.Get(providerToken).(*Provider), id)
}

// resolveIn runs the algorithm against an explicit store and provider. The
// bag adapter uses it so that access from later handler logic still hits
// the scope captured when the adapter ran.
func resolveIn(store *scope.Store, provider *Provider, id Identifier) (any, error) {
	if !store.Has(instancesToken) {
		store.Set(instancesToken, make(map[string]any))
	}
	cache := store.Get(instancesToken).(map[string]any)

	key := id.Key()
	if v, ok := cache[key]; ok {
		return v, nil
	}

	var factory Factory
	var found bool
	switch id := id.(type) {
	case RouteScoped:
		factory, found = provider.Lookup(id.Route, id.Name)
	case CatalogEntry:
		// Wildcard route, so only the bare-name registration can match.
		factory, found = provider.Lookup(AnyRoute, id.Name)
	default:
		return nil, fmt.Errorf("service: unknown identifier kind %T", id)
	}
	if !found {
		return nil, notRegistered(id)
	}

	v := factory()
	cache[key] = v
	return v, nil
}

func notRegistered(id Identifier) error {
	switch id := id.(type) {
	case RouteScoped:
		return &NotRegisteredError{Name: id.Name, Route: id.Route}
	case CatalogEntry:
		return &NotRegisteredError{Name: id.Name}
	default:
		return &NotRegisteredError{Name: id.Key()}
	}
}

// ── Handler-facing API ───────────────────────────────────────────────────────

// Get resolves a catalog entry for the current request. The first call in a
// request invokes the factory; every later call returns the same instance.
func Get[T any](r *http.Request, def *Def[T]) (T, error) {
	return as[T](resolve(r.Context(), CatalogEntry{Name: def.ServiceName()}))
}

// MustGet is Get for handlers that prefer a panic over an error branch; the
// router's Recoverer translates the panic into a 500.
func MustGet[T any](r *http.Request, def *Def[T]) T {
	v, err := Get(r, def)
	if err != nil {
		panic(err)
	}
	return v
}

// ResolveRoute resolves name against the route currently being handled,
// preferring a factory registered for that route over a global one.
func ResolveRoute[T any](r *http.Request, name string) (T, error) {
	return ResolveAt[T](r, activeRoute(r), name)
}

// ResolveAt resolves name against an explicit route. Pass AnyRoute to reach
// only global registrations.
func ResolveAt[T any](r *http.Request, route Route, name string) (T, error) {
	return as[T](resolve(r.Context(), RouteScoped{Route: route, Name: name}))
}

func activeRoute(r *http.Request) Route {
	route := Route{Method: r.Method}
	if rc := chi.RouteContext(r.Context()); rc != nil {
		route.Pattern = rc.RoutePattern()
	}
	return route
}

func as[T any](v any, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	typed, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("service: resolved to %T, want %T", v, zero)
	}
	return typed, nil
}
