package code

// HTTP status codes.
const (
	// StatusOK - 200: success.
	StatusOK = 200
	// StatusCreated - 201: resource created.
	StatusCreated = 201
	// StatusBadRequest - 400: bad request.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: unauthorized.
	StatusUnauthorized = 401
	// StatusForbidden - 403: forbidden.
	StatusForbidden = 403
	// StatusNotFound - 404: not found.
	StatusNotFound = 404
	// StatusTooManyRequests - 429: too many requests.
	StatusTooManyRequests = 429
	// StatusInternalServerError - 500: internal server error.
	StatusInternalServerError = 500
)

// Common error codes (100xxx).
const (
	// ErrSuccess - 200: success.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: unknown error.
	ErrUnknown
	// ErrBind - 400: request body could not be bound.
	ErrBind
	// ErrValidation - 400: request failed validation.
	ErrValidation
	// ErrTokenInvalid - 401: missing, invalid or expired token.
	ErrTokenInvalid
	// ErrTooManyRequests - 429: rate limit exceeded.
	ErrTooManyRequests
	// ErrForbidden - 403: role not allowed.
	ErrForbidden
	// ErrCreated - 201: resource created.
	ErrCreated
	// ErrNotFound - 404: resource not found.
	ErrNotFound
)

// User error codes (101xxx).
const (
	// ErrInvalidCredentials - 401: wrong username or password.
	ErrInvalidCredentials int = iota + 101000
	// ErrSetupComplete - 403: the first admin already exists.
	ErrSetupComplete
)

// Store error codes (105xxx).
const (
	// ErrStore - 500: spreadsheet request failed.
	ErrStore int = iota + 105000
)
