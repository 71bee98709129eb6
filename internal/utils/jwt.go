package utils // package utils provides helper functions for token creation and verification

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5" // JWT library for creating and parsing signed tokens
)

// ErrTokenInvalid covers every way an access token can fail verification:
// bad signature, wrong algorithm, unparsable payload or elapsed expiry.
// Callers do not need to distinguish; all of them map to HTTP 401.
var ErrTokenInvalid = errors.New("invalid token")

// AccessToken represents a signed JWT access token along with its expiry.
// The Token field contains the serialized JWT string; Exp stores the UTC
// expiration time. Access tokens are carried in the Authorization header
// when calling protected endpoints.
type AccessToken struct {
	Token string
	Exp   time.Time
}

// NewAccessToken builds and signs an HS256 JWT for the given subject (the
// username confirmed by the upstream identity provider). The JWT carries
// the standard claims sub, exp and iat; ttlMin controls the lifetime in
// minutes.
func NewAccessToken(secret, subject string, ttlMin int) (AccessToken, error) {
	now := time.Now().UTC()
	exp := now.Add(time.Duration(ttlMin) * time.Minute)
	claims := jwt.MapClaims{
		"sub": subject,
		"exp": exp.Unix(),
		"iat": now.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return AccessToken{}, err
	}
	return AccessToken{Token: signed, Exp: exp}, nil
}

// ParseSubject verifies the signature and expiry of a serialized access
// token and returns its subject. Any parse, signature, algorithm or
// expiry failure yields ErrTokenInvalid. Verification is always the full
// check; a token is never accepted on superficial properties such as its
// length.
func ParseSubject(secret, raw string) (string, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		// Reject tokens signed with anything but HMAC; a crafted RSA
		// or "none" token must not reach the secret comparison.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return "", ErrTokenInvalid
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrTokenInvalid
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", ErrTokenInvalid
	}
	return sub, nil
}
