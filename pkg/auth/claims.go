package auth

import "github.com/golang-jwt/jwt/v5"

// AccessTokenPayload captures the data available when minting a JWT.
type AccessTokenPayload struct {
	Name  string
	Email string
	JTI   string
}

// AccessTokenClaims represents the typed JWT issued to the admin UI.
type AccessTokenClaims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}
