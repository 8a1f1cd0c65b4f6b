package middleware

import (
	"context"
	"net/http"
	"strings"

	"clinic-management-api/internal/authz"
	"clinic-management-api/internal/domain/repository"
	"clinic-management-api/pkg/jwt"
	"clinic-management-api/pkg/response"
)

type contextKey string

const tokenIDKey contextKey = "token_id"

type AuthMiddleware struct {
	jwtService  *jwt.JWTService
	sessionRepo repository.SessionRepository
}

func NewAuthMiddleware(jwtService *jwt.JWTService, sessionRepo repository.SessionRepository) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:  jwtService,
		sessionRepo: sessionRepo,
	}
}

// Authenticate resolves the bearer token into an acting identity. A token
// that is missing, malformed, expired or logged out is rejected before any
// handler runs.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		// The signature may be fine while the session is gone: logout
		// deletes it and Redis expires it with the token.
		exists, err := m.sessionRepo.Exists(r.Context(), claims.UserID, claims.TokenID)
		if err != nil {
			response.InternalServerError(w, "Failed to validate token")
			return
		}
		if !exists {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		ctx := authz.WithActor(r.Context(), authz.Actor{
			ID:    claims.UserID,
			Email: claims.Email,
			Role:  claims.Role,
		})
		ctx = context.WithValue(ctx, tokenIDKey, claims.TokenID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetTokenIDFromContext extracts the session token ID from context
func GetTokenIDFromContext(ctx context.Context) (string, bool) {
	tokenID, ok := ctx.Value(tokenIDKey).(string)
	return tokenID, ok
}
