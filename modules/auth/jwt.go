package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token validation failures form a closed set. The HTTP layer collapses all
// of them into a uniform 401, but they stay distinguishable internally.
var (
	// ErrTokenMalformed is returned when the token cannot be parsed at all.
	ErrTokenMalformed = errors.New("token is malformed")
	// ErrInvalidSignature is returned when the token signature does not verify.
	ErrInvalidSignature = errors.New("token signature is invalid")
	// ErrExpiredToken is returned when the token is past its expiration.
	ErrExpiredToken = errors.New("token has expired")
	// ErrInvalidToken covers validation failures outside the cases above.
	ErrInvalidToken = errors.New("invalid token")
)

// JWTConfig holds process-wide token configuration, loaded once at startup.
type JWTConfig struct {
	SecretKey     string
	Algorithm     string
	TokenDuration time.Duration
	Issuer        string
}

// DefaultJWTConfig returns a default JWT configuration.
// In production, the secret key should be loaded from environment variables.
func DefaultJWTConfig() JWTConfig {
	return JWTConfig{
		SecretKey:     "your-secret-key-change-in-production",
		Algorithm:     "HS256",
		TokenDuration: 30 * time.Minute,
		Issuer:        "task-manager-api",
	}
}

// JWTClaims is the claim set carried by issued tokens. The user identity
// lives in the registered Subject claim as a decimal id.
type JWTClaims struct {
	jwt.RegisteredClaims
}

// JWTManager issues and validates bearer tokens.
type JWTManager struct {
	config JWTConfig
	method jwt.SigningMethod
}

// NewJWTManager creates a JWTManager for the configured signing algorithm.
// Only HMAC algorithms are accepted; the secret is a shared key.
func NewJWTManager(config JWTConfig) (*JWTManager, error) {
	method := jwt.GetSigningMethod(config.Algorithm)
	if method == nil {
		return nil, fmt.Errorf("unknown signing algorithm: %s", config.Algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unsupported signing algorithm: %s", config.Algorithm)
	}
	return &JWTManager{
		config: config,
		method: method,
	}, nil
}

// Issue creates a signed token whose subject is the given user id.
func (m *JWTManager) Issue(userID uint) (string, error) {
	now := time.Now()
	claims := JWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Issuer:    m.config.Issuer,
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.config.TokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(m.method, claims)
	return token.SignedString([]byte(m.config.SecretKey))
}

// Validate verifies the signature and expiration of a token and returns the
// user id encoded in its subject. A token signed with a different algorithm
// than configured fails with ErrInvalidSignature.
func (m *JWTManager) Validate(tokenString string) (uint, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (any, error) {
		if token.Method.Alg() != m.method.Alg() {
			return nil, ErrInvalidSignature
		}
		return []byte(m.config.SecretKey), nil
	})

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return 0, ErrExpiredToken
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return 0, ErrInvalidSignature
		case errors.Is(err, ErrInvalidSignature):
			// Algorithm mismatch detected in the keyfunc
			return 0, ErrInvalidSignature
		case errors.Is(err, jwt.ErrTokenMalformed):
			return 0, ErrTokenMalformed
		default:
			return 0, ErrInvalidToken
		}
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid {
		return 0, ErrInvalidToken
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, ErrTokenMalformed
	}

	return uint(userID), nil
}

// TokenDuration returns the token lifetime in seconds.
func (m *JWTManager) TokenDuration() int64 {
	return int64(m.config.TokenDuration.Seconds())
}
