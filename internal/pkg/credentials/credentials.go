// Package credentials owns the two cryptographic concerns of the system:
// password hashing and bearer-token signing. CPU-bound only, no I/O.
package credentials

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultBcryptCost matches the work factor the seeded hashes were
	// produced with.
	DefaultBcryptCost = 12

	// DefaultTokenTTL is the bearer-token lifetime.
	DefaultTokenTTL = 7 * 24 * time.Hour
)

// Identity is the verified claim set attached to a request after
// authentication succeeds.
type Identity struct {
	UserId     uuid.UUID
	Email      string
	Role       string
	TenantId   uuid.UUID
	TenantSlug string
}

type Service struct {
	secret     []byte
	bcryptCost int
	tokenTTL   time.Duration
}

func NewService(secret string, bcryptCost int, tokenTTL time.Duration) *Service {
	if bcryptCost == 0 {
		bcryptCost = DefaultBcryptCost
	}
	if tokenTTL == 0 {
		tokenTTL = DefaultTokenTTL
	}
	return &Service{
		secret:     []byte(secret),
		bcryptCost: bcryptCost,
		tokenTTL:   tokenTTL,
	}
}

func (s *Service) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (s *Service) VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func (s *Service) IssueToken(identity Identity) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":     identity.UserId.String(),
		"email":       identity.Email,
		"role":        identity.Role,
		"tenant_id":   identity.TenantId.String(),
		"tenant_slug": identity.TenantSlug,
		"iat":         now.Unix(),
		"exp":         now.Add(s.tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// VerifyToken returns nil on any signature failure, malformed token or
// expiry. Callers treat nil as unauthenticated.
func (s *Service) VerifyToken(tokenStr string) *Identity {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil
	}

	userId, err := uuid.Parse(stringClaim(claims, "user_id"))
	if err != nil {
		return nil
	}
	tenantId, err := uuid.Parse(stringClaim(claims, "tenant_id"))
	if err != nil {
		return nil
	}

	return &Identity{
		UserId:     userId,
		Email:      stringClaim(claims, "email"),
		Role:       stringClaim(claims, "role"),
		TenantId:   tenantId,
		TenantSlug: stringClaim(claims, "tenant_slug"),
	}
}

func stringClaim(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}
