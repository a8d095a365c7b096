package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the payload of an access token: the registered claims plus
// the identity of the authenticated user.
type TokenClaims struct {
	jwt.RegisteredClaims

	UserID string `json:"userId"`
	Email  string `json:"email"`
}

// Token wraps a signed JWT together with its parsed claims.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	Claims TokenClaims `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`
}

// Identity returns the user identity carried by the token.
func (t *Token) Identity() Identity {
	return Identity{UserID: t.Claims.UserID, Email: t.Claims.Email}
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

// Identity is the authenticated caller of a request.
type Identity struct {
	UserID string
	Email  string
}
