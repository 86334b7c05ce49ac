package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100

	// HTTP headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Context keys
	ContextKeyUserID      = "user_id"
	ContextKeyCurrentUser = "current_user"

	// Session cookie
	TokenCookie = "token"

	// Roles
	RoleUser  = "user"
	RoleAdmin = "admin"

	// Database table names
	TableUsers    = "users"
	TableTickets  = "tickets"
	TableComments = "comments"
)
