package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTManager signs and validates session tokens with a single process-wide
// secret. Login picks between the session TTL and the longer remember-me TTL.
type JWTManager struct {
	Secret      []byte
	SessionTTL  time.Duration
	RememberTTL time.Duration
}

func NewJWTManager(secret string, sessionTTL, rememberTTL time.Duration) *JWTManager {
	return &JWTManager{
		Secret:      []byte(secret),
		SessionTTL:  sessionTTL,
		RememberTTL: rememberTTL,
	}
}

// Claims is the verified identity carried by a bearer token. It is produced
// only by Parse; nothing else hand-constructs one.
type Claims struct {
	UserID string `json:"uid"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Generate issues a signed token for the identity. remember selects the long
// TTL.
func (m *JWTManager) Generate(userID, email, name, role string, remember bool) (string, time.Time, error) {
	ttl := m.SessionTTL
	if remember {
		ttl = m.RememberTTL
	}
	now := time.Now()
	exp := now.Add(ttl)
	claims := &Claims{
		UserID: userID,
		Email:  email,
		Name:   name,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString(m.Secret)
	return s, exp, err
}

// Parse validates signature and expiry. Callers get the claims or an error;
// which check failed is not distinguished.
func (m *JWTManager) Parse(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.Secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
