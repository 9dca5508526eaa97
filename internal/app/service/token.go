// Package service provides the redirect resolution state machine, the claim
// deduplication guard and the credential token codec they share.
package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// CollectibleRef identifies an on-chain claimable item.
type CollectibleRef struct {
	Contract string `json:"address"`
	TokenID  int64  `json:"tokenId"`
	ChainID  int64  `json:"chainId"`
}

// UserSnapshot is the partial user record embedded in claim-handoff tokens.
type UserSnapshot struct {
	Username string `json:"username"`
	Address  string `json:"address"`
	Email    string `json:"email,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
	Bio      string `json:"bio,omitempty"`
}

// Claims represents the claims that are included in a credential token.
// It embeds the RegisteredClaims from the JWT package and carries the tag
// subject id plus optional collectible and user payloads.
type Claims struct {
	jwt.RegisteredClaims
	SubjectID   string          `json:"uuid"`
	Collectible *CollectibleRef `json:"collectible,omitempty"`
	User        *UserSnapshot   `json:"user,omitempty"`
}

// Codec signs and verifies credential tokens with a single process-wide
// HMAC secret injected at construction.
type Codec struct {
	secret []byte
}

func NewCodec(secret string) *Codec {
	return &Codec{
		secret: []byte(secret),
	}
}

// Sign produces a compact signed token binding the claims. A zero ttl means
// the token never expires; otherwise the expiry is ttl from now.
func (c *Codec) Sign(claims *Claims, ttl time.Duration) (string, error) {
	if ttl > 0 {
		claims.RegisteredClaims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return tokenString, nil
}

// Verify parses a token and returns its claims. Signature failures always win
// over expiry: a tampered token reports ErrInvalidToken even when it is also
// expired, so unauthenticated callers learn nothing about the payload.
func (c *Codec) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return c.secret, nil
	})

	if err != nil {
		var ve *jwt.ValidationError
		if errors.As(err, &ve) {
			if ve.Errors&(jwt.ValidationErrorSignatureInvalid|jwt.ValidationErrorMalformed|jwt.ValidationErrorUnverifiable) != 0 {
				return nil, ErrInvalidToken
			}
			if ve.Errors&jwt.ValidationErrorExpired != 0 {
				return nil, ErrTokenExpired
			}
		}
		return nil, ErrInvalidToken
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
