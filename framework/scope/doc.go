// Package scope provides request-scoped key/value storage for HTTP handlers.
//
// A Store lives exactly as long as one in-flight request: Middleware opens a
// fresh store when a request enters the router and the store is dropped with
// the request context when handling ends. Concurrently active requests never
// see each other's stores.
//
// Values are keyed by opaque Tokens, one per logical purpose:
//
//	var userToken = scope.NewToken("auth.user")
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    store, ok := scope.FromContext(r.Context())
//	    if !ok {
//	        // scope.Middleware was not installed
//	    }
//	    store.Set(userToken, user)
//	}
//
// A store is owned by its request's handler chain and is not safe for use
// from goroutines that outlive the request.
package scope
