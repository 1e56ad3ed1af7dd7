// Package models - claims del token JWT.
package models

import "github.com/dgrijalva/jwt-go"

// JwtClaims contiene los datos codificados dentro del JWT.
type JwtClaims struct {
	UserID string   `json:"userId"`
	Email  string   `json:"email"`
	Roles  []string `json:"roles"`
	jwt.StandardClaims
}
