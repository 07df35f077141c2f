package middleware

import (
	"errors"
	"net/http"
	"strings"

	"asset-registry/internal/data/repository"
	"asset-registry/pkg/token"
	"asset-registry/pkg/utils"

	"go.uber.org/zap"
)

// Auth verifies the bearer JWT, rejects revoked tokens, resolves the user
// record, and stores the identity in the request context. Every route except
// register and login sits behind this.
func Auth(tokens *token.Manager, userRepo repository.UserRepository, revokedRepo repository.RevokedTokenRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Extract token
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "authorization_token_not_found")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				utils.ResponseUnauthorized(w, "authorization_token_not_found")
				return
			}

			claims, err := tokens.Parse(strings.TrimSpace(parts[1]))
			if err != nil {
				switch {
				case errors.Is(err, token.ErrTokenExpired):
					utils.ResponseUnauthorized(w, "token_expired")
				case errors.Is(err, token.ErrTokenMissing):
					utils.ResponseUnauthorized(w, "authorization_token_not_found")
				default:
					utils.ResponseUnauthorized(w, "token_invalid")
				}
				return
			}

			userID, err := claims.UserID()
			if err != nil {
				utils.ResponseUnauthorized(w, "token_invalid")
				return
			}
			jti, err := claims.TokenID()
			if err != nil {
				utils.ResponseUnauthorized(w, "token_invalid")
				return
			}

			// A logged-out token is no longer valid even before expiry
			revoked, err := revokedRepo.IsRevoked(r.Context(), jti)
			if err != nil {
				logger.Error("Failed to check token revocation",
					zap.Error(err), zap.String("jti", jti.String()))
				utils.ResponseInternalError(w, "internal_server_error")
				return
			}
			if revoked {
				logger.Warn("Revoked token presented", zap.String("jti", jti.String()))
				utils.ResponseUnauthorized(w, "token_invalid")
				return
			}

			// Resolve the user so the role comes from the database, not the token
			user, err := userRepo.FindByID(r.Context(), userID)
			if err != nil {
				logger.Error("Failed to resolve token user",
					zap.Error(err), zap.String("user_id", userID.String()))
				utils.ResponseInternalError(w, "internal_server_error")
				return
			}
			if user == nil {
				logger.Warn("Token for unknown user", zap.String("user_id", userID.String()))
				utils.ResponseUnauthorized(w, "user_not_found")
				return
			}

			ctx := utils.SetUserContext(r.Context(), user.ID, int(user.Role))
			ctx = utils.SetTokenContext(ctx, jti)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
