package service

import "sync"

// Factory builds one service instance. The resolver invokes a factory at
// most once per request per identifier and caches the result for the rest
// of that request only.
type Factory func() any

// Provider is the process-wide factory registry — the durable mapping from
// service identifier to factory. Create one per application (never a package
// singleton, so independent routers don't cross-contaminate), register
// factories at start-up, and attach it to the router with Middleware.
type Provider struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewProvider creates an empty registry.
func NewProvider() *Provider {
	return &Provider{factories: make(map[string]Factory)}
}

// Register stores factory under the identifier's canonical key. Registering
// a second factory under the same identifier silently replaces the first;
// last write wins.
func (p *Provider) Register(id Identifier, factory Factory) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.factories[id.Key()] = factory
}

// RegisterRoute binds a factory to one route and service name. It takes
// precedence over a global registration of the same name on that route.
//
//	provider.RegisterRoute("POST", "/posts", "createPost", func() any { ... })
func (p *Provider) RegisterRoute(method, pattern, name string, factory Factory) {
	p.Register(RouteScoped{Route: Route{Method: method, Pattern: pattern}, Name: name}, factory)
}

// RegisterGlobal binds a factory under a bare catalog name, reachable from
// every route that has no route-specific registration for it.
func (p *Provider) RegisterGlobal(name string, factory Factory) {
	p.Register(CatalogEntry{Name: name}, factory)
}

// Provide registers a typed factory for a catalog entry.
//
//	service.Provide(provider, Services.Counter, func() *Counter { ... })
func Provide[T any](p *Provider, def *Def[T], factory func() T) {
	p.RegisterGlobal(def.ServiceName(), func() any { return factory() })
}

// Lookup finds the factory for (route, name). A factory registered against
// the route itself wins; otherwise the bare-name global registration is
// returned. Absence is not an error at this layer.
func (p *Provider) Lookup(route Route, name string) (Factory, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if f, ok := p.factories[RouteScoped{Route: route, Name: name}.Key()]; ok {
		return f, true
	}
	f, ok := p.factories[CatalogEntry{Name: name}.Key()]
	return f, ok
}
