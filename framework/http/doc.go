// Package http provides request and response helpers for route handlers.
//
// # Request
//
//	req := gohttp.NewRequest(r)
//
//	var payload struct {
//	    Title string `json:"title"`
//	}
//	if err := req.Bind(&payload); err != nil { ... }
//
//	page := req.Query("page", "1")
//	id := req.RouteParam("id")
//	token := req.BearerToken()
//
// # Response
//
//	res := gohttp.NewResponse(w)
//	res.Success(data)            // 200 {"data": ...}
//	res.Created(data)            // 201 {"data": ...}
//	res.Error(400, "bad input")  // {"message": "bad input"}
//	res.NotFound()               // 404 {"message": "Not found."}
//
// # Error-returning handlers
//
// Handle wraps a handler that returns an error and performs the generic
// error-to-response translation, including the service layer's resolution
// failures:
//
//	r.Get("/x", gohttp.Handle(func(w http.ResponseWriter, r *http.Request) error {
//	    v, err := service.Get(r, Services.Thing)
//	    if err != nil {
//	        return err // 500 naming the unregistered service
//	    }
//	    gohttp.NewResponse(w).Success(v)
//	    return nil
//	}))
package http
