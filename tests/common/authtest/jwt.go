//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"seatwise/internal/pkg/config"
	pkgjwt "seatwise/internal/pkg/jwt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper mints staff tokens the way the auth service would. The API only
// validates tokens, so tests sign their own with the shared secret.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, staffID, restaurantID uuid.UUID, role string) string {
	t.Helper()
	return h.signToken(t, staffID, restaurantID, role, time.Now().Add(time.Hour))
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, staffID, restaurantID uuid.UUID, role string) string {
	t.Helper()
	return h.signToken(t, staffID, restaurantID, role, time.Now().Add(-time.Minute))
}

func (h *JWTHelper) signToken(t *testing.T, staffID, restaurantID uuid.UUID, role string, expiresAt time.Time) string {
	t.Helper()

	claims := pkgjwt.Claims{
		StaffID:      staffID,
		RestaurantID: restaurantID,
		Role:         role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(h.cfg.Secret))
	require.NoError(t, err)
	return token
}
