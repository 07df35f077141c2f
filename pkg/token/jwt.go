package token

import (
	"errors"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrTokenMissing = errors.New("authorization_token_not_found")
	ErrTokenInvalid = errors.New("token_invalid")
	ErrTokenExpired = errors.New("token_expired")
)

// Claims is the payload carried by every issued bearer token.
type Claims struct {
	Role int `json:"role"`
	jwt.RegisteredClaims
}

// Issued describes a freshly signed token.
type Issued struct {
	AccessToken string
	JTI         uuid.UUID
	ExpiresAt   time.Time
	ExpiresIn   int64 // seconds
}

// Manager signs and verifies HS256 bearer tokens.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// TTL returns the configured token lifetime.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Issue signs a token for the given user. The jti is unique per token so a
// single token can be revoked without touching the user's other sessions.
func (m *Manager) Issue(userID uuid.UUID, role int) (*Issued, error) {
	if len(m.secret) == 0 {
		return nil, errors.New("jwt secret is empty")
	}

	now := time.Now()
	expiresAt := now.Add(m.ttl)

	claims := &Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &Issued{
		AccessToken: signed,
		JTI:         uuid.MustParse(claims.ID),
		ExpiresAt:   expiresAt,
		ExpiresIn:   int64(m.ttl.Seconds()),
	}, nil
}

// Parse validates the signature and expiry and returns the claims.
func (m *Manager) Parse(tokenStr string) (*Claims, error) {
	if tokenStr == "" {
		return nil, ErrTokenMissing
	}

	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !tok.Valid {
		return nil, ErrTokenInvalid
	}

	if claims.Subject == "" || claims.ID == "" {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}

// UserID returns the subject claim as a uuid.
func (c *Claims) UserID() (uuid.UUID, error) {
	id, err := uuid.Parse(c.Subject)
	if err != nil {
		return uuid.Nil, ErrTokenInvalid
	}
	return id, nil
}

// TokenID returns the jti claim as a uuid.
func (c *Claims) TokenID() (uuid.UUID, error) {
	jti, err := uuid.Parse(c.ID)
	if err != nil {
		return uuid.Nil, ErrTokenInvalid
	}
	return jti, nil
}
