package scope

import (
	"context"
	"net/http"
)

// Token is an opaque key for request-scoped storage. Two tokens are equal
// only if they are the same token value; the name exists for diagnostics.
//
//	var cacheToken = scope.NewToken("service.instances")
type Token struct {
	name string
}

// NewToken creates a storage token. Create one per logical purpose, at
// package level, and share it between the writer and the reader.
func NewToken(name string) *Token {
	return &Token{name: name}
}

func (t *Token) String() string { return t.name }

// ── Store ────────────────────────────────────────────────────────────────────

// Store holds values for the lifetime of a single request. It is owned by
// that one request's handler chain and needs no locking.
type Store struct {
	values map[*Token]any
}

func newStore() *Store {
	return &Store{values: make(map[*Token]any)}
}

// Has reports whether a value has been set under the token.
func (s *Store) Has(t *Token) bool {
	_, ok := s.values[t]
	return ok
}

// Get returns the value set under the token, or nil.
func (s *Store) Get(t *Token) any {
	return s.values[t]
}

// Set stores a value under the token for the rest of the request.
func (s *Store) Set(t *Token, v any) {
	s.values[t] = v
}

// ── Context plumbing ─────────────────────────────────────────────────────────

type ctxKey struct{}

// Middleware opens a fresh storage scope for each request. Install it before
// any middleware or handler that reads or writes scoped values. The store is
// discarded with the request context when handling ends.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// A nested mount shares the request's existing scope.
		if _, ok := FromContext(r.Context()); ok {
			next.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithStore(r.Context())))
	})
}

// WithStore returns a context carrying a fresh Store. Useful in tests and
// for callers outside an HTTP handler chain.
func WithStore(ctx context.Context) context.Context {
	return context.WithValue(ctx, ctxKey{}, newStore())
}

// FromContext returns the request's Store, if a scope is active.
func FromContext(ctx context.Context) (*Store, bool) {
	s, ok := ctx.Value(ctxKey{}).(*Store)
	return s, ok
}
