package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "warehouse-dashboard"

var signingMethod = jwt.SigningMethodHS256

// cookieClaims is what the browser holds. The session itself stays server side.
type cookieClaims struct {
	jwt.RegisteredClaims
}

func mintCookie(secret string, sess *Session, now time.Time, maxAge time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("session secret is required")
	}

	claims := cookieClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   sess.UserID,
			ID:        sess.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(maxAge)),
		},
	}

	signed, err := jwt.NewWithClaims(signingMethod, claims).SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("signing session cookie: %w", err)
	}
	return signed, nil
}

// parseCookie validates the cookie and returns the session id it carries.
func parseCookie(secret, value string, now time.Time) (string, error) {
	claims := &cookieClaims{}
	_, err := jwt.ParseWithClaims(
		value,
		claims,
		func(token *jwt.Token) (interface{}, error) {
			if token.Method != signingMethod {
				return nil, fmt.Errorf("unexpected signing method %s", token.Header["alg"])
			}
			return []byte(secret), nil
		},
		jwt.WithValidMethods([]string{signingMethod.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		return "", err
	}
	if claims.ID == "" {
		return "", fmt.Errorf("session cookie has no id")
	}
	return claims.ID, nil
}
