package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"camp-pricing/internal/domain/auth"
	"camp-pricing/internal/handler/httperr"
	"camp-pricing/internal/pkg/errs"
	"camp-pricing/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxSubjectIDKey = "subject_id"
	ctxRoleKey      = "subject_role"
)

var (
	errMissingToken   = errs.New("missing bearer token")
	errRoleNotSet     = errs.New("role not set; RequireAuth must run first")
	errRoleBelowLevel = errs.New("role below required level")
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingToken, "Access token required", nil)
			return
		}

		subjectID, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxSubjectIDKey, subjectID)
		c.Set(ctxRoleKey, role)
		c.Set("jwt_claims", map[string]any{
			"subject_id": subjectID.String(),
			"role":       role.String(),
		})
		c.Next()
	}
}

// RequireRole must run after RequireAuth.
func (m *AuthMiddleware) RequireRole(minRole auth.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetRole(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusInternalServerError, errRoleNotSet, "Internal server error", nil)
			return
		}

		if !role.AtLeast(minRole) {
			httperr.AbortWithError(c, http.StatusForbidden, errRoleBelowLevel, "Insufficient permissions", nil)
			return
		}

		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

func GetSubjectID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxSubjectIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := v.(uuid.UUID)
	return id, ok
}

func GetRole(c *gin.Context) (auth.Role, bool) {
	v, exists := c.Get(ctxRoleKey)
	if !exists {
		return "", false
	}

	role, ok := v.(auth.Role)
	return role, ok
}
