package auth

import (
	"errors"
	"fmt"
	"soilgate/internal/types"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the structure of the JWT payload.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

type GenerateJwtOpts struct {
	Id       string
	Issuer   string
	Secret   string
	Subject  string
	Ttl      time.Duration
	Username string
}

// GenerateJwt creates a signed JWT for a user. A zero Ttl issues a token
// without an expiry
func GenerateJwt(opts GenerateJwtOpts) (string, error) {
	if opts.Secret == "" {
		return "", fmt.Errorf("failed to receive a signing secret")
	}
	now := time.Now()
	claims := Claims{
		Username: opts.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:       opts.Id,
			Issuer:   opts.Issuer,
			Subject:  opts.Subject,
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if opts.Ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(opts.Ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(opts.Secret))
}

// ValidateJwt verifies the token's signature and, when one is present,
// its expiry. Returns the Claims if valid, otherwise an error.
func ValidateJwt(jwtSecret, tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("failed to validate token signing method")
		}
		return []byte(jwtSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("failed to validate token: %w", types.ErrorJwtTokenExpired)
		} else if errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			return nil, fmt.Errorf("failed to validate token: %w", types.ErrorJwtTokenSignature)
		}
		return nil, fmt.Errorf("failed to parse token claims: %w: %s", types.ErrorJwtClaimsInvalid, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("failed to validate token claims structure: %w", types.ErrorJwtClaimsInvalid)
	}
	if claims.ID == "" || claims.Username == "" {
		return nil, fmt.Errorf("failed to find session claims: %w", types.ErrorJwtClaimsInvalid)
	}

	return claims, nil
}
