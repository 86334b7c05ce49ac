package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"ticketdesk/internal/shared/biztime"
)

// Claims is the signed session payload. Subject carries the user id as a
// decimal string; validity is determined solely by signature and expiry.
type Claims struct {
	jwt.RegisteredClaims
}

// UserID parses the token subject as a user id.
func (c *Claims) UserID() (uint, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid token subject: %q", c.Subject)
	}
	return uint(id), nil
}

// JWTService issues and verifies HS256 session tokens. Tokens expire after
// expMinutes; 60 minutes is the configured default.
type JWTService struct {
	secret     []byte
	expMinutes int
}

func NewJWTService(secret string, expMinutes int) *JWTService {
	if expMinutes <= 0 {
		expMinutes = 60
	}
	return &JWTService{
		secret:     []byte(secret),
		expMinutes: expMinutes,
	}
}

// Issue signs a token for the given user id.
func (s *JWTService) Issue(userID uint) (string, error) {
	now := biztime.NowUTC()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.expMinutes) * time.Minute)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify validates signature and expiry. Expired and malformed tokens both
// fail here; callers map the failure to a single invalid-token error.
func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// ExpMinutes returns the token lifetime in minutes. The cookie max-age is
// derived from this so issuance and transport cannot disagree.
func (s *JWTService) ExpMinutes() int {
	return s.expMinutes
}
