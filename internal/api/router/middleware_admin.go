package router

import (
	"net/http"
	"strings"
)

const adminTokenHeader = "X-Admin-Token"
const adminTokenQuery = "admin_token"

// requireAdminToken gates the lead export endpoints behind a shared token.
// When expected is empty, admin routes are closed entirely.
func requireAdminToken(expected string) func(http.Handler) http.Handler {
	expected = strings.TrimSpace(expected)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if expected == "" {
				http.Error(w, "admin access disabled", http.StatusUnauthorized)
				return
			}
			token := strings.TrimSpace(r.Header.Get(adminTokenHeader))
			if token == "" {
				token = strings.TrimSpace(r.URL.Query().Get(adminTokenQuery))
			}
			if token != expected {
				http.Error(w, "invalid admin token", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
