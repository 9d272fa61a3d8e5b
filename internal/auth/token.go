// Package auth models the caller identity and the HS256 bearer tokens that
// carry it. Tokens are issued out of band by the account service with the same
// shared secret; this backend only parses them.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Role int

const (
	RoleAnonymous Role = iota
	RoleUser
	RoleAdmin
)

// Identity is the capability-tagged view of the caller resolved at the
// middleware boundary. Handlers never re-check the admin flag themselves.
type Identity struct {
	UserID uint
	Role   Role
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// NewAccessToken signs an HS256 JWT for a user with sub, exp and iat claims.
// Used by tests and by whatever service issues tokens against the shared
// secret.
func NewAccessToken(secret string, userID uint, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub": fmt.Sprintf("%d", userID),
		"exp": now.Add(ttl).Unix(),
		"iat": now.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// ParseAccessToken validates an HS256 token and returns the user id from the
// subject claim.
func ParseAccessToken(secret, raw string) (uint, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return []byte(secret), nil
	})
	if err != nil {
		return 0, err
	}
	if !tok.Valid {
		return 0, fmt.Errorf("invalid token")
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return 0, fmt.Errorf("invalid claims")
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return 0, fmt.Errorf("missing subject claim")
	}
	var id uint
	if _, err := fmt.Sscanf(sub, "%d", &id); err != nil {
		return 0, fmt.Errorf("malformed subject claim %q", sub)
	}
	return id, nil
}
