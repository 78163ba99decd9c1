package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Flash is a one-shot pair of messages shown on the next rendered page.
type Flash struct {
	Success string `json:"success,omitempty"`
	Error   string `json:"error,omitempty"`
}

// IsEmpty reports whether the flash carries no message.
func (f Flash) IsEmpty() bool { return f.Success == "" && f.Error == "" }

// FlashCodec signs flash messages as short-lived HS256 JWTs so they can ride
// in a client cookie without being forged.
type FlashCodec struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewFlashCodec creates a codec.
// secret must be at least 32 characters for HS256 security.
func NewFlashCodec(secret, issuer string, ttl time.Duration) *FlashCodec {
	return &FlashCodec{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
	}
}

type flashClaims struct {
	jwt.RegisteredClaims
	Flash
}

// Encode returns the signed token for f.
func (c *FlashCodec) Encode(f Flash) (string, error) {
	now := time.Now()
	claims := flashClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    c.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Flash: f,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign flash: %w", err)
	}

	return signed, nil
}

// Decode validates a token produced by Encode and returns its messages.
func (c *FlashCodec) Decode(tokenString string) (Flash, error) {
	if tokenString == "" {
		return Flash{}, errors.New("flash token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &flashClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return c.secret, nil
	}, jwt.WithIssuer(c.issuer), jwt.WithExpirationRequired())
	if err != nil {
		return Flash{}, fmt.Errorf("parse flash: %w", err)
	}

	claims, ok := token.Claims.(*flashClaims)
	if !ok || !token.Valid {
		return Flash{}, errors.New("invalid flash claims")
	}

	return claims.Flash, nil
}
