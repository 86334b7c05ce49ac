package errors

import "net/http"

// Authentication-specific error types
const (
	ErrorTypeMissingCredential ErrorType = "missing_credential"
	ErrorTypeInvalidPassword   ErrorType = "invalid_password"
	ErrorTypeInvalidEmail      ErrorType = "invalid_email"
	ErrorTypeUserAlreadyExists ErrorType = "user_already_exists"
	ErrorTypeTokenInvalid      ErrorType = "token_invalid"
	ErrorTypeTokenCreation     ErrorType = "token_creation_failure"
)

// NewMissingCredentialError is returned when a request omits required
// credentials: empty email/password on registration, or no token on a
// protected route (the caller picks the HTTP code).
func NewMissingCredentialError(message string) *AppError {
	return &AppError{
		Type:    ErrorTypeMissingCredential,
		Message: message,
		Code:    http.StatusBadRequest,
	}
}

// NewMissingTokenError is the 401 variant of a missing credential, used by
// the auth middleware when neither cookie nor bearer header carries a token.
func NewMissingTokenError() *AppError {
	return &AppError{
		Type:    ErrorTypeMissingCredential,
		Message: "You are not logged in, please provide a token",
		Code:    http.StatusUnauthorized,
	}
}

// NewInvalidEmailError is returned on login when no account matches the email.
func NewInvalidEmailError() *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidEmail,
		Message: "Invalid email",
		Code:    http.StatusBadRequest,
	}
}

// NewInvalidPasswordError is returned on login when the password does not
// match the stored hash. Verification failures of any kind map here so the
// response never distinguishes a corrupt hash from a wrong password.
func NewInvalidPasswordError() *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidPassword,
		Message: "Invalid password",
		Code:    http.StatusBadRequest,
	}
}

// NewUserAlreadyExistsError is returned when registration hits the unique
// email constraint (or the friendly pre-check).
func NewUserAlreadyExistsError() *AppError {
	return &AppError{
		Type:    ErrorTypeUserAlreadyExists,
		Message: "User with that email already exists",
		Code:    http.StatusConflict,
	}
}

// NewInvalidTokenError covers expired, malformed, and badly signed tokens.
func NewInvalidTokenError() *AppError {
	return &AppError{
		Type:    ErrorTypeTokenInvalid,
		Message: "Invalid or expired token",
		Code:    http.StatusUnauthorized,
	}
}

// NewInvalidIdentityError is returned when a verified token carries a
// subject that does not parse as a user id.
func NewInvalidIdentityError() *AppError {
	return &AppError{
		Type:    ErrorTypeTokenInvalid,
		Message: "Invalid identity",
		Code:    http.StatusUnauthorized,
	}
}

// NewUserGoneError distinguishes a valid token whose account was deleted
// after issuance from a plain invalid token.
func NewUserGoneError() *AppError {
	return &AppError{
		Type:    ErrorTypeTokenInvalid,
		Message: "The user belonging to this token no longer exists",
		Code:    http.StatusUnauthorized,
	}
}

// NewTokenCreationError is returned when signing a session token fails.
func NewTokenCreationError() *AppError {
	return &AppError{
		Type:    ErrorTypeTokenCreation,
		Message: "Failed to create session token",
		Code:    http.StatusInternalServerError,
	}
}
