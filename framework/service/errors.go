package service

import (
	"errors"
	"fmt"
)

// ErrProviderMissing is returned when resolution runs without an active
// request scope carrying a Provider. It signals a wiring defect: install
// scope.Middleware and service.Middleware before any routes.
var ErrProviderMissing = errors.New("service: no provider in request scope (install scope.Middleware and service.Middleware)")

// NotRegisteredError reports a resolution for which no factory was ever
// registered, after route-then-global fallback.
type NotRegisteredError struct {
	Name  string
	Route Route // zero for catalog lookups
}

func (e *NotRegisteredError) Error() string {
	if e.Route == (Route{}) || e.Route == AnyRoute {
		return fmt.Sprintf("service: [%s] is not registered", e.Name)
	}
	return fmt.Sprintf("service: [%s] is not registered for %s %s", e.Name, e.Route.Method, e.Route.Pattern)
}
