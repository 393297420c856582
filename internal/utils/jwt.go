package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-protocol-catalog/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidTokenClaims is returned when a token verifies but its payload
// does not describe a usable principal.
var ErrInvalidTokenClaims = errors.New("invalid token claims")

// GenerateJWTToken signs an HS256 session assertion for user.
//
// The token carries the user id, username and role plus the standard
// iss, sub, iat and exp claims. exp is exactly now+tokenDuration.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("protocol-catalog", user, 24*time.Hour, "secret", time.Now())
func GenerateJWTToken(issuer string, user models.User, tokenDuration time.Duration, signKey string, now time.Time) (models.Token, error) {
	if issuer == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	claims := &models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(user.ID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, Claims: claims, SignedString: tokenString}, nil
}

// ValidateAndParseJWTToken verifies the signature (HS256 only), issuer and
// expiry of tokenString and returns its claims.
//
// A token whose role is not one of the known roles is rejected with
// [ErrInvalidTokenClaims].
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	claims := &models.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.UserID <= 0 || claims.Username == "" || !claims.Role.Valid() {
		return models.Token{}, ErrInvalidTokenClaims
	}

	return models.Token{Token: token, Claims: claims, SignedString: tokenString}, nil
}
