package middleware

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the decoded payload of a session bearer token.
type TokenClaims struct {
	SessionID string
	ContextID string
	Email     string
	Role      string
}

// ParseBearer verifies an "Authorization: Bearer <jwt>" header value and
// returns its claims. ok is false for a missing, malformed, or invalidly
// signed token.
func ParseBearer(jwtSecret, authHeader string) (TokenClaims, bool) {
	if authHeader == "" {
		return TokenClaims{}, false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return TokenClaims{}, false
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return TokenClaims{}, false
	}

	out := TokenClaims{}
	out.SessionID, _ = claims["sid"].(string)
	out.ContextID, _ = claims["ctx"].(string)
	out.Email, _ = claims["email"].(string)
	out.Role, _ = claims["role"].(string)
	return out, true
}
