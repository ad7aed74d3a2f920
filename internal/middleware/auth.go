package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/mgalvezc/delivery-core/internal/entities"
	"github.com/mgalvezc/delivery-core/internal/rbac"
	"github.com/mgalvezc/delivery-core/pkg/utils"

	"github.com/dgrijalva/jwt-go"
)

type principalKey struct{}

func WithPrincipal(ctx context.Context, p entities.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

func PrincipalFromContext(ctx context.Context) (entities.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(entities.Principal)
	return p, ok
}

// Auth verifies a Bearer token issued by the identity provider and puts the
// resolved principal into the request context. It never rejects on its own:
// enforcement happens in RequirePermission so public routes stay public.
func Auth(secret string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				next.ServeHTTP(w, r)
				return
			}

			claims := jwt.MapClaims{}
			token, err := jwt.ParseWithClaims(strings.TrimPrefix(header, "Bearer "), claims, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				next.ServeHTTP(w, r)
				return
			}

			sub, _ := claims["sub"].(string)
			role := rbac.Normalize(fmt.Sprint(claims["role"]))
			if sub == "" || role == "" {
				next.ServeHTTP(w, r)
				return
			}

			ctx := WithPrincipal(r.Context(), entities.Principal{ID: sub, Role: role})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequirePermission aborts with 401 when no principal was resolved and with
// 403 when the principal's role lacks the permission token.
func RequirePermission(perm rbac.Permission) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := PrincipalFromContext(r.Context())
			if !ok {
				utils.WriteError(w, "authentication required", http.StatusUnauthorized)
				return
			}
			if !rbac.HasPermission(principal.Role, perm) {
				utils.WriteError(w, "not allowed", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
