package service

// Route identifies a matched route by its HTTP method and the pattern source
// text the router matched against (e.g. "GET", "/posts/{id}").
type Route struct {
	Method  string
	Pattern string
}

// AnyRoute is the wildcard route used when a lookup should only be satisfied
// by a catalog (route-independent) registration.
var AnyRoute = Route{Method: "*", Pattern: "*"}

// Identifier names a service for registration and resolution. It is one of
// RouteScoped or CatalogEntry.
type Identifier interface {
	// Key returns the canonical registry key. Route-scoped keys embed
	// method and pattern, catalog keys are the bare service name, so the
	// two kinds never collide in the registry's key space.
	Key() string
}

// RouteScoped identifies a factory registered against one route and name.
type RouteScoped struct {
	Route Route
	Name  string
}

func (id RouteScoped) Key() string {
	return id.Route.Method + ":" + id.Route.Pattern + ":" + id.Name
}

// CatalogEntry identifies a factory registered globally under a bare name,
// independent of any route.
type CatalogEntry struct {
	Name string
}

func (id CatalogEntry) Key() string { return id.Name }
