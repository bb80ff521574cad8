package jwt

import (
	"fmt"

	gojwt "github.com/golang-jwt/jwt/v5"
)

// Claims are the claims of access and refresh tokens.
// Kind tells the two apart so a refresh token never authenticates a request.
type Claims struct {
	gojwt.RegisteredClaims
	Kind string `json:"kind"`
}

// Create signs claims with HS256.
func Create(claims Claims, secret string) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("empty signing secret")
	}
	token := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Validate checks the signature and the time based claims.
func Validate(token string, secret string) (*Claims, error) {
	var claims Claims
	parsed, err := gojwt.ParseWithClaims(token, &claims, func(t *gojwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*gojwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	}, gojwt.WithValidMethods([]string{gojwt.SigningMethodHS256.Alg()}), gojwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return &claims, nil
}
