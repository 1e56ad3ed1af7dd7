// Package authsvc - servicios del dominio auth (usuarios, tokens, códigos de acceso, QR).
package authsvc

import (
	"time"

	models "github.com/jesus-bazan-entel/IdecapLMS/internal/api/auth/models"
	"github.com/jesus-bazan-entel/IdecapLMS/internal/common"
	"github.com/jesus-bazan-entel/IdecapLMS/internal/global"

	"github.com/dgrijalva/jwt-go"
)

// TokenService firma y verifica tokens JWT de sesión.
type TokenService struct {
	secret            []byte
	expirationMinutes int
}

// NewTokenService crea un TokenService con la configuración global del servidor.
func NewTokenService() *TokenService {
	return &TokenService{
		secret:            []byte(global.MongoDB_ServerConfig.JwtSecret),
		expirationMinutes: global.MongoDB_ServerConfig.JwtExpirationMinutes,
	}
}

// CreateToken genera un JWT firmado (HS256) con los datos del usuario.
func (s *TokenService) CreateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := models.JwtClaims{
		UserID: user.ID.Hex(),
		Email:  user.Email,
		Roles:  user.Roles,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(time.Duration(s.expirationMinutes) * time.Minute).Unix(),
			Subject:   user.ID.Hex(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", common.NewError(common.ErrCodeAuthToken, "Error al firmar el token", common.StatusInternalServerError, err)
	}
	return signed, nil
}

// VerifyToken valida la firma y expiración del JWT y retorna sus claims.
func (s *TokenService) VerifyToken(tokenString string) (*models.JwtClaims, error) {
	claims := &models.JwtClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrTokenInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if ve, ok := err.(*jwt.ValidationError); ok && ve.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrTokenInvalid
	}
	if !token.Valid {
		return nil, common.ErrTokenInvalid
	}
	return claims, nil
}
