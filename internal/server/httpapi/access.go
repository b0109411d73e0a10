package httpapi

import (
	"net/http"

	"sweetshop/internal/server/models"
)

// accessLevel is a route's authentication requirement.
type accessLevel int

const (
	accessNone accessLevel = iota
	accessAuthenticated
	accessAdmin
)

// require gates a handler behind the given access level: 401 when a
// principal is required but none is attached, 403 when the principal's role
// is insufficient. Anything the middleware silently dropped (expired,
// malformed, tampered tokens) surfaces here as 401.
func (a *API) require(level accessLevel, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if level == accessNone {
			next(w, r)
			return
		}

		p, ok := PrincipalFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "Authentication required")
			return
		}
		if level == accessAdmin && p.Role != models.RoleAdmin {
			writeError(w, http.StatusForbidden, "Admin role required")
			return
		}

		next(w, r)
	}
}
