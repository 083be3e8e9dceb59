package middlewares

import "net/http"

// SetContentTypeMiddleware marks every response as JSON before the route
// handler runs. Handlers serving another type overwrite the header.
func SetContentTypeMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}
