package auth

import (
	"errors"
	"time"

	"github.com/ardiansyahrp/jobhub/internal/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type Role string

const (
	RoleUser    Role = "user"
	RoleCompany Role = "company"
)

// Identity is the verified actor attached to every operation. It is resolved
// once by the auth middleware and passed explicitly into usecases; nothing
// downstream reads it from ambient request state.
type Identity struct {
	ID   uuid.UUID
	Role Role
}

func (i Identity) IsUser() bool    { return i.Role == RoleUser }
func (i Identity) IsCompany() bool { return i.Role == RoleCompany }

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

var ErrInvalidToken = errors.New("invalid token")

// IssueToken signs a bearer token carrying the actor's id and role.
func IssueToken(id uuid.UUID, role Role) (string, error) {
	cfg := config.LoadJWTConfig()
	now := time.Now()
	claims := Claims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.TTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(cfg.Secret)
}

// ParseToken verifies a bearer token and returns the identity it carries.
// Expired, malformed or wrongly-signed tokens all come back as ErrInvalidToken.
func ParseToken(tokenString string) (Identity, error) {
	cfg := config.LoadJWTConfig()
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return cfg.Secret, nil
	})
	if err != nil || !token.Valid {
		return Identity{}, ErrInvalidToken
	}
	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return Identity{}, ErrInvalidToken
	}
	role := Role(claims.Role)
	if role != RoleUser && role != RoleCompany {
		return Identity{}, ErrInvalidToken
	}
	return Identity{ID: id, Role: role}, nil
}
