package http

import (
	"github.com/gin-gonic/gin"

	ticketusecases "ticketdesk/internal/application/ticket/usecases"
	userusecases "ticketdesk/internal/application/user/usecases"
	"ticketdesk/internal/infrastructure/auth"
	"ticketdesk/internal/infrastructure/config"
	"ticketdesk/internal/infrastructure/database"
	"ticketdesk/internal/infrastructure/ratelimit"
	"ticketdesk/internal/infrastructure/repository"
	authhandler "ticketdesk/internal/interfaces/http/handlers/auth"
	commenthandler "ticketdesk/internal/interfaces/http/handlers/comment"
	healthhandler "ticketdesk/internal/interfaces/http/handlers/health"
	tickethandler "ticketdesk/internal/interfaces/http/handlers/ticket"
	"ticketdesk/internal/interfaces/http/middleware"
	"ticketdesk/internal/interfaces/http/routes"
	"ticketdesk/internal/shared/logger"
)

// NewRouter assembles the gin engine: middleware chain, repositories, use
// cases, handlers, and the /api route tree.
func NewRouter(
	cfg *config.Config,
	conn *database.Connection,
	limiter ratelimit.RateLimiter,
	log logger.Interface,
) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(middleware.Recovery(log))
	r.Use(middleware.RequestLogging(log))
	r.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	// Infrastructure services
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.ExpMinutes)
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)

	// Repositories
	userRepo := repository.NewGormUserRepository(conn)
	ticketRepo := repository.NewGormTicketRepository(conn)
	commentRepo := repository.NewGormCommentRepository(conn)

	// Use cases
	registerUC := userusecases.NewRegisterUseCase(userRepo, hasher, log)
	loginUC := userusecases.NewLoginUseCase(userRepo, hasher, jwtService, log)
	currentUserUC := userusecases.NewGetCurrentUserUseCase(userRepo)
	createTicketUC := ticketusecases.NewCreateTicketUseCase(ticketRepo, log)
	getTicketUC := ticketusecases.NewGetTicketUseCase(ticketRepo)
	listTicketsUC := ticketusecases.NewListTicketsUseCase(ticketRepo, log)
	updateTicketUC := ticketusecases.NewUpdateTicketUseCase(ticketRepo, log)
	deleteTicketUC := ticketusecases.NewDeleteTicketUseCase(ticketRepo, log)
	createCommentUC := ticketusecases.NewCreateCommentUseCase(commentRepo, log)
	listCommentsUC := ticketusecases.NewListCommentsUseCase(commentRepo, log)

	// Handlers
	authH := authhandler.NewHandler(registerUC, loginUC, currentUserUC, cfg.Auth.Cookie, cfg.Auth.JWT.ExpMinutes)
	ticketH := tickethandler.NewHandler(createTicketUC, getTicketUC, listTicketsUC, updateTicketUC, deleteTicketUC)
	commentH := commenthandler.NewHandler(createCommentUC, listCommentsUC)
	healthH := healthhandler.NewHandler()

	var authLimiter gin.HandlerFunc
	if cfg.Auth.RateLimit.Enabled && limiter != nil {
		authLimiter = middleware.RateLimit(limiter, "auth", log)
	}

	api := r.Group("/api")
	{
		api.GET("/healthchecker", healthH.Check)
		routes.RegisterAuthRoutes(api, authH, jwtService, userRepo, authLimiter)
		routes.RegisterTicketRoutes(api, ticketH)
		routes.RegisterCommentRoutes(api, commentH)
	}

	return r
}
