//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"camp-pricing/internal/domain/auth"
	"camp-pricing/internal/pkg/config"
	"camp-pricing/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, subjectID uuid.UUID, role auth.Role) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	service := jwt.NewService(h.cfg.Secret, duration)
	token, err := service.GenerateToken(subjectID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) OrganizerToken(t *testing.T) string {
	t.Helper()
	return h.GenerateToken(t, uuid.New(), auth.RoleOrganizer)
}

func (h *JWTHelper) StaffToken(t *testing.T) string {
	t.Helper()
	return h.GenerateToken(t, uuid.New(), auth.RoleStaff)
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, subjectID uuid.UUID, role auth.Role) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, 1*time.Millisecond)
	token, err := service.GenerateToken(subjectID, role)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
