package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tawqimpact/fundraising-api/internal/access"
	"github.com/tawqimpact/fundraising-api/internal/auth"
	apierrors "github.com/tawqimpact/fundraising-api/internal/errors"
	"github.com/tawqimpact/fundraising-api/internal/models"
	"github.com/tawqimpact/fundraising-api/internal/repository"
)

// ContextKeyUser is where the authenticated user is stored in the Gin context.
const ContextKeyUser = "current_user"

// RequireAuth validates the bearer token, loads the user with their profile
// and rejects inactive accounts.
func RequireAuth(tokens *auth.TokenIssuer, userRepo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			apierrors.Unauthorized(c, "Expected: Bearer <token>")
			c.Abort()
			return
		}

		claims, err := tokens.Parse(strings.TrimSpace(parts[1]))
		if err != nil {
			apierrors.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		user, err := userRepo.FindByID(claims.UserID, "EmployeeProfile", "SupervisorProfile")
		if err != nil || !user.IsActive {
			apierrors.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ContextKeyUser, user)
		c.Next()
	}
}

// CurrentUser retrieves the authenticated user from the context.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(ContextKeyUser)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}

// CurrentActor builds the access policy actor for the authenticated user.
func CurrentActor(c *gin.Context) (access.Actor, bool) {
	user, ok := CurrentUser(c)
	if !ok {
		return access.Actor{}, false
	}
	return access.ActorFromUser(user), true
}
