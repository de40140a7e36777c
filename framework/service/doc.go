// Package service provides request-scoped service injection on top of the
// router: named services, factories registered globally or per route, and
// lazy resolution inside handlers with at-most-once-per-request creation.
//
// # Lifecycle
//
//  1. Create a Provider and register factories at start-up.
//  2. Install scope.Middleware and service.Middleware(provider) on the
//     router before any routes (the app kernel does both).
//  3. Resolve services inside handlers; each request gets its own instances.
//
// # Catalog
//
// A catalog attaches stable names and static types to your services:
//
//	var Services = service.DefineCatalog(&struct {
//	    DB     *service.Def[*sql.DB]
//	    Mailer *service.Def[Mailer] `service:"mail"`
//	}{})
//
//	service.Provide(provider, Services.DB, openDB)
//
// # Resolving
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    db, err := service.Get(r, Services.DB)  // created at most once per request
//	    ...
//	    db2 := service.MustGet(r, Services.DB)  // same instance, no factory call
//	}
//
// Factories can also be bound to a single route; a route-specific binding
// always wins over a global one of the same name:
//
//	provider.RegisterRoute("POST", "/posts", "createPost", newCreatePost)
//	provider.RegisterGlobal("createPost", newGenericCreate)
//
//	// inside the POST /posts handler:
//	create, err := service.ResolveRoute[func(string) string](r, "createPost")
//
// # The services surface
//
// WithServices exposes catalog entries as a lazy name-keyed surface for
// handler code that works with dynamic names. Nothing is instantiated until
// a name is first read:
//
//	g.Middleware(service.WithServices(Services.DB, Services.Mailer))
//
//	bag := service.Services(r)
//	mailer, err := bag.Get("mail")
//
// # Failure modes
//
// Resolution returns ErrProviderMissing when the middleware pair was never
// installed, and a *NotRegisteredError naming the service when no factory
// exists for it. Both are wiring or configuration defects: there is no
// retry and no default value, and the Must variants panic into the router's
// Recoverer.
package service
