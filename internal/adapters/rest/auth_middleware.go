package rest

import (
	"context"
	"net/http"
	"strings"

	"github.com/dcportal07-ops/DC-Football-Portal-sub001/internal/adapters/authclient"
)

// Тип для ключа контекста с claims.
type claimsKeyType struct{}

var claimsKey = claimsKeyType{}

// ClaimsFromContext извлекает claims, добавленные middleware Authenticate.
func ClaimsFromContext(ctx context.Context) (*authclient.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*authclient.Claims)
	return claims, ok
}

type AuthMiddleware struct {
	authClient *authclient.Client
}

func NewAuthMiddleware(authClient *authclient.Client) *AuthMiddleware {
	return &AuthMiddleware{authClient: authClient}
}

// Authenticate - middleware для проверки токена через identity provider
func (am *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			WriteJSONError(w, http.StatusUnauthorized, "Authorization header required")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			WriteJSONError(w, http.StatusUnauthorized, "Invalid token format")
			return
		}

		// Валидируем токен, делая запрос к identity provider-у
		claims, err := am.authClient.ValidateToken(r.Context(), tokenString)
		if err != nil {
			WriteJSONError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		// Добавляем информацию о пользователе в контекст запроса
		ctx := context.WithValue(r.Context(), claimsKey, claims)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole - middleware для проверки роли пользователя
func (am *AuthMiddleware) RequireRole(requiredRoles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			for _, role := range requiredRoles {
				if claims.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			WriteJSONError(w, http.StatusForbidden, "Forbidden")
		})
	}
}
