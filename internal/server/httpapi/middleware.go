package httpapi

import (
	"context"
	"net/http"
	"strings"

	"sweetshop/internal/server/auth"
	"sweetshop/internal/server/models"
)

type ctxKey string

const principalKey ctxKey = "principal"

// Principal is the authenticated identity attached to a request. The
// authority string follows the "ROLE_"+role convention.
type Principal struct {
	Subject   string
	Role      models.Role
	Authority string
}

// withPrincipal extracts a bearer token, validates it, and attaches the
// resulting Principal to the request context. An absent, malformed, expired
// or badly-signed token leaves the context untouched and the request
// continues anonymously; rejecting it is the access table's job. Downstream,
// a bad token is indistinguishable from no token at all.
func (a *API) withPrincipal(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := auth.ParseToken(strings.TrimPrefix(header, "Bearer "), a.jwtSecret)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		p := &Principal{
			Subject:   claims.Subject,
			Role:      models.Role(claims.Role),
			Authority: "ROLE_" + claims.Role,
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), principalKey, p)))
	})
}

// PrincipalFromContext returns the principal attached by withPrincipal, if any.
func PrincipalFromContext(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalKey).(*Principal)
	return p, ok
}
