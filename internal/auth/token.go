// Package auth emite e verifica os bearer tokens que identificam um barbeiro.
package auth

import (
	"errors"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const tokenTTL = 24 * time.Hour

type TokenManager struct {
	secret []byte
}

func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{secret: []byte(secret)}
}

// Issue gera um token HS256 com o id do barbeiro em "sub" e validade de 24h.
func (m *TokenManager) Issue(providerID uint) (string, error) {
	claims := jwt.MapClaims{
		"sub": float64(providerID),
		"exp": time.Now().Add(tokenTTL).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify devolve o id do barbeiro codificado no token. Qualquer falha de
// verificação resulta em (0, false); o motivo é apenas logado, nunca propaga
// para o chamador.
func (m *TokenManager) Verify(tokenString string) (uint, bool) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		slog.Debug("token rejected", slog.String("reason", rejectReason(err)))
		return 0, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		slog.Debug("token rejected", slog.String("reason", "invalid_claims"))
		return 0, false
	}

	sub, ok := claims["sub"].(float64)
	if !ok || sub <= 0 {
		slog.Debug("token rejected", slog.String("reason", "invalid_subject"))
		return 0, false
	}

	return uint(sub), true
}

// rejectReason distingue expiração, assinatura e token malformado para o log.
func rejectReason(err error) string {
	switch {
	case err == nil:
		return "invalid_token"
	case errors.Is(err, jwt.ErrTokenExpired):
		return "expired"
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return "bad_signature"
	case errors.Is(err, jwt.ErrTokenMalformed):
		return "malformed"
	default:
		return "invalid_token"
	}
}
