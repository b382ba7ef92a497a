package custom_errors

import "errors"

var (
	// Post errors
	ErrPostNotFound       = errors.New("post not found")
	ErrPostValidation     = errors.New("post validation failed")
	ErrPostAuthorMismatch = errors.New("user is not the author of the post")
	ErrNoUpdateRows       = errors.New("no fields to update")

	// User / auth errors
	ErrUserNotFound         = errors.New("user not found")
	ErrEmailExists          = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrInvalidToken         = errors.New("invalid token")
	ErrRefreshTokenExpired  = errors.New("refresh token expired")
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
	ErrUnauthenticated      = errors.New("authentication required")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")

	// Infrastructure errors
	ErrDatabaseQuery = errors.New("database query error")
	ErrDatabaseScan  = errors.New("database scan error")
	ErrCacheMiss     = errors.New("cache miss")
)
