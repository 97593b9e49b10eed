package utils

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"habittracker/backend/config"
	"habittracker/backend/models"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Token audiences. A token is only accepted where its audience is expected.
const (
	AudienceAccess  = "access"
	AudienceRefresh = "refresh"
	AudienceReset   = "reset"
)

// Claims is the payload of every token the service issues. Refresh and reset
// tokens only carry the subject.
type Claims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

func sign(claims Claims, audience, secret string, now time.Time, ttl time.Duration) (string, error) {
	claims.ID = uuid.NewString()
	claims.Audience = jwt.ClaimStrings{audience}
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func GenerateAccessToken(user *models.User, cfg *config.Config, now time.Time) (string, error) {
	return sign(Claims{
		Email:            user.Email,
		Role:             user.Role,
		RegisteredClaims: jwt.RegisteredClaims{Subject: user.ID},
	}, AudienceAccess, cfg.JWTSecret, now, cfg.AccessTokenTTL)
}

func GenerateRefreshToken(userID string, cfg *config.Config, now time.Time) (string, error) {
	return sign(Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: userID}}, AudienceRefresh, cfg.RefreshTokenSecret, now, cfg.RefreshTokenTTL)
}

func GenerateResetToken(userID string, cfg *config.Config, now time.Time) (string, error) {
	return sign(Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: userID}}, AudienceReset, cfg.JWTSecret, now, cfg.ResetTokenTTL)
}

// ParseToken verifies signature, expiry and audience and returns the claims.
func ParseToken(tokenString, secret, audience string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid || claims.Subject == "" || !claims.VerifyAudience(audience, true) {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ExtractClaimsFromToken reads the Authorization header. Both "Bearer <jwt>" and
// a bare token are accepted.
func ExtractClaimsFromToken(c *fiber.Ctx, cfg *config.Config) (*Claims, error) {
	header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if header == "" {
		return nil, ErrInvalidToken
	}
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		header = strings.TrimSpace(header[7:])
	}
	return ParseToken(header, cfg.JWTSecret, AudienceAccess)
}
