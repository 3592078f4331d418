package domain

import "github.com/golang-jwt/jwt/v5"

// Claims são os dados do token de sessão emitido pela plataforma
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// UserID é o subject do token
func (c *Claims) UserID() string {
	return c.Subject
}
