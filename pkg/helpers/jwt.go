package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTManager signs and validates the session tokens carried in the auth cookie.
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

type SessionClaims struct {
	UserID    string `json:"uid"`
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// TTL returns the session lifetime for the given remember flag.
func (m *JWTManager) TTL(remember bool) time.Duration {
	if remember {
		return m.RememberTTL
	}
	return m.SessionTTL
}

// GenerateSessionToken issues a signed token binding a user to a server-side
// session. The expiry matches the Redis session TTL.
func (m *JWTManager) GenerateSessionToken(userID, sessionID string, remember bool) (string, time.Time, error) {
	exp := time.Now().Add(m.TTL(remember))
	claims := &SessionClaims{
		UserID:    userID,
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString(m.Secret)
	return s, exp, err
}

func (m *JWTManager) ParseSessionToken(tokenStr string) (*SessionClaims, error) {
	claims := &SessionClaims{}
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
