package service

import (
	"net/http"

	"github.com/km-arc/go-scoped/framework/scope"
)

var bagToken = scope.NewToken("service.bag")

// Bag is the lazy per-request services surface installed by WithServices.
// Each exposed name maps to a thunk running the resolver on first access;
// later accesses return the memoized instance.
type Bag struct {
	thunks map[string]func() (any, error)
}

// Has reports whether a name is exposed on this request's surface.
func (b *Bag) Has(name string) bool {
	if b == nil {
		return false
	}
	_, ok := b.thunks[name]
	return ok
}

// Get resolves the named service. A nil bag means no scope is active for
// the request; a name never exposed resolves to a NotRegisteredError.
func (b *Bag) Get(name string) (any, error) {
	if b == nil {
		return nil, ErrProviderMissing
	}
	thunk, ok := b.thunks[name]
	if !ok {
		return nil, &NotRegisteredError{Name: name}
	}
	return thunk()
}

// MustGet is Get with a panic on failure.
func (b *Bag) MustGet(name string) any {
	v, err := b.Get(name)
	if err != nil {
		panic(err)
	}
	return v
}

// WithServices exposes the given catalog entries as lazy lookups on the
// request's Bag. The middleware captures the request's scope and provider
// when it runs — not at first access — so chained handler logic resolves
// against this request even after further context derivation. Applying it
// more than once in a chain merges the exposed names additively.
//
//	r.Group(func(g *routing.Router) {
//	    g.Middleware(service.WithServices(Services.Counter, Services.Mailer))
//	    g.Get("/stats", statsHandler) // service.Services(r).Get("counter")
//	})
func WithServices(entries ...Entry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			store, ok := scope.FromContext(r.Context())
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			bag, ok := store.Get(bagToken).(*Bag)
			if !ok {
				bag = &Bag{thunks: make(map[string]func() (any, error))}
				store.Set(bagToken, bag)
			}

			provider, _ := store.Get(providerToken).(*Provider)
			for _, e := range entries {
				name := e.ServiceName()
				if provider == nil {
					bag.thunks[name] = func() (any, error) { return nil, ErrProviderMissing }
					continue
				}
				bag.thunks[name] = func() (any, error) {
					return resolveIn(store, provider, CatalogEntry{Name: name})
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Services returns the request's Bag. Without an active scope it returns
// nil; without an applied WithServices it returns an empty surface.
func Services(r *http.Request) *Bag {
	store, ok := scope.FromContext(r.Context())
	if !ok {
		return nil
	}
	if bag, ok := store.Get(bagToken).(*Bag); ok {
		return bag
	}
	return &Bag{}
}
