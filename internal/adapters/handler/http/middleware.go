package http

import "net/http"

const adminTokenHeader = "X-Admin-Token"

// AdminAuth guards the admin routes with a static shared token. A missing
// header is unauthorized, a wrong one is forbidden.
func AdminAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(adminTokenHeader)
			if got == "" {
				respondError(w, http.StatusUnauthorized, "admin token required")
				return
			}
			if got != token {
				respondError(w, http.StatusForbidden, "invalid admin token")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
