package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tawqimpact/fundraising-api/internal/models"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Claims carries the standard JWT claims plus the authenticated identity.
// Role makes issued tokens self-describing for API clients; the auth
// middleware still reloads the user so deactivation takes effect immediately.
type Claims struct {
	jwt.RegisteredClaims
	UserID uint64      `json:"user_id"`
	Role   models.Role `json:"role"`
}

// TokenIssuer signs and parses bearer tokens.
type TokenIssuer struct {
	secret     []byte
	issuer     string
	expiryMins int
}

func NewTokenIssuer(secret, issuer string, expiryMins int) *TokenIssuer {
	return &TokenIssuer{
		secret:     []byte(secret),
		issuer:     issuer,
		expiryMins: expiryMins,
	}
}

// Issue creates a signed token for the given user.
func (t *TokenIssuer) Issue(user *models.User) (string, error) {
	if len(t.secret) == 0 {
		return "", fmt.Errorf("jwt: empty secret")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    t.issuer,
			Subject:   fmt.Sprintf("%d", user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(t.expiryMins) * time.Minute)),
		},
		UserID: user.ID,
		Role:   user.Role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Parse validates the token signature and expiry and returns its claims.
func (t *TokenIssuer) Parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", tok.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
