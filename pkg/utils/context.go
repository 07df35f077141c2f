package utils

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	UserIDKey contextKey = "user_id"
	RoleKey   contextKey = "role"
	TokenKey  contextKey = "token_id"
)

func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userIDVal := ctx.Value(UserIDKey)
	if userIDVal == nil {
		return uuid.Nil, false
	}

	userIDStr, ok := userIDVal.(string)
	if !ok {
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, false
	}

	return userID, true
}

func GetRoleFromContext(ctx context.Context) (int, bool) {
	roleVal := ctx.Value(RoleKey)
	if roleVal == nil {
		return 0, false
	}

	role, ok := roleVal.(int)
	return role, ok
}

func SetUserContext(ctx context.Context, userID uuid.UUID, role int) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, userID.String())
	ctx = context.WithValue(ctx, RoleKey, role)
	return ctx
}

// GetTokenIDFromContext returns the jti of the presented bearer token
func GetTokenIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	tokenVal := ctx.Value(TokenKey)
	if tokenVal == nil {
		return uuid.Nil, false
	}

	jtiStr, ok := tokenVal.(string)
	if !ok {
		return uuid.Nil, false
	}

	jti, err := uuid.Parse(jtiStr)
	if err != nil {
		return uuid.Nil, false
	}

	return jti, true
}

// SetTokenContext stores the bearer token's jti in the context
func SetTokenContext(ctx context.Context, jti uuid.UUID) context.Context {
	return context.WithValue(ctx, TokenKey, jti.String())
}
