package http

import (
	"errors"
	"net/http"

	"github.com/km-arc/go-scoped/framework/service"
)

// HandlerFunc is a route handler that may fail with an error.
type HandlerFunc func(http.ResponseWriter, *http.Request) error

// Handle adapts an error-returning handler, translating service resolution
// failures into JSON error responses. A missing registration or an
// uninstalled service middleware is a configuration defect, so both map to
// a 500 that names the condition; any other error gets a generic 500.
//
//	r.Get("/stats", gohttp.Handle(func(w http.ResponseWriter, r *http.Request) error {
//	    counter, err := service.Get(r, Services.Counter)
//	    if err != nil {
//	        return err
//	    }
//	    gohttp.NewResponse(w).Success(counter)
//	    return nil
//	}))
func Handle(fn HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := fn(w, r)
		if err == nil {
			return
		}

		res := NewResponse(w)
		var notRegistered *service.NotRegisteredError
		switch {
		case errors.As(err, &notRegistered):
			res.ServerError(notRegistered.Error())
		case errors.Is(err, service.ErrProviderMissing):
			res.ServerError(err.Error())
		default:
			res.ServerError()
		}
	}
}
