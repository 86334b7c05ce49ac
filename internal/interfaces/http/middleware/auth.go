package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	userusecases "ticketdesk/internal/application/user/usecases"
	"ticketdesk/internal/domain/user"
	"ticketdesk/internal/shared/constants"
	apperrors "ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/utils"
)

// RequireAuth gates protected routes. The token is read from the session
// cookie first, then the Authorization bearer header. On success the user
// id and the loaded account are attached to the request context.
func RequireAuth(verifier userusecases.TokenVerifier, userRepo user.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := utils.GetTokenFromCookie(c)
		if token == "" {
			token = bearerToken(c)
		}
		if token == "" {
			abortWithError(c, apperrors.NewMissingTokenError())
			return
		}

		claims, err := verifier.Verify(token)
		if err != nil {
			abortWithError(c, apperrors.NewInvalidTokenError())
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			abortWithError(c, apperrors.NewInvalidIdentityError())
			return
		}

		u, err := userRepo.GetByID(c.Request.Context(), userID)
		if err != nil {
			utils.ErrorResponse(c, 500, "Failed to load user")
			c.Abort()
			return
		}
		if u == nil {
			abortWithError(c, apperrors.NewUserGoneError())
			return
		}

		c.Set(constants.ContextKeyUserID, userID)
		c.Set(constants.ContextKeyCurrentUser, u)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader(constants.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return ""
}

func abortWithError(c *gin.Context, err *apperrors.AppError) {
	utils.ErrorResponse(c, err.Code, err.Message)
	c.Abort()
}

// CurrentUser returns the authenticated account attached by RequireAuth.
func CurrentUser(c *gin.Context) (*user.User, bool) {
	v, ok := c.Get(constants.ContextKeyCurrentUser)
	if !ok {
		return nil, false
	}
	u, ok := v.(*user.User)
	return u, ok
}

// CurrentUserID returns the authenticated user id attached by RequireAuth.
func CurrentUserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(constants.ContextKeyUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
