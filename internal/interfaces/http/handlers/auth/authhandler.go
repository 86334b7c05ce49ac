package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	userusecases "ticketdesk/internal/application/user/usecases"
	"ticketdesk/internal/interfaces/http/middleware"
	sharedconfig "ticketdesk/internal/shared/config"
	"ticketdesk/internal/shared/utils"
)

// Handler serves registration, login, logout, and the current-user lookup.
type Handler struct {
	registerUC userusecases.RegisterExecutor
	loginUC    userusecases.LoginExecutor
	meUC       userusecases.GetCurrentUserExecutor
	cookieCfg  sharedconfig.CookieConfig
	expMinutes int
}

func NewHandler(
	registerUC userusecases.RegisterExecutor,
	loginUC userusecases.LoginExecutor,
	meUC userusecases.GetCurrentUserExecutor,
	cookieCfg sharedconfig.CookieConfig,
	expMinutes int,
) *Handler {
	return &Handler{
		registerUC: registerUC,
		loginUC:    loginUC,
		meUC:       meUC,
		cookieCfg:  cookieCfg,
		expMinutes: expMinutes,
	}
}

// Register handles POST /api/register.
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	result, err := h.registerUC.Execute(c.Request.Context(), userusecases.RegisterCommand{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.DataResponse(c, http.StatusCreated, gin.H{"user": result.User})
}

// Login handles POST /api/login. On success the token is returned in the
// body and set as an http-only session cookie.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), userusecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SetTokenCookie(c, h.cookieCfg, result.Token, h.expMinutes*60)
	utils.SuccessResponse(c, http.StatusOK, gin.H{"token": result.Token})
}

// Logout handles GET /api/logout. It expires the session cookie; the token
// itself stays valid until its expiry, there is no server-side revocation.
func (h *Handler) Logout(c *gin.Context) {
	utils.ClearTokenCookie(c, h.cookieCfg)
	utils.SuccessResponse(c, http.StatusOK, nil)
}

// Me handles GET /api/users/me. The session is established by the auth
// middleware; a missing user id means the route was wired without it.
func (h *Handler) Me(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error occurred")
		return
	}

	result, err := h.meUC.Execute(c.Request.Context(), userusecases.GetCurrentUserQuery{
		UserID: userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.DataResponse(c, http.StatusOK, gin.H{"user": result.User})
}
