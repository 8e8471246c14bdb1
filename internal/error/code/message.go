package code

var codeMessageMap = map[int]string{
	// common
	ErrSuccess:         "Success",
	ErrUnknown:         "Unknown error",
	ErrBind:            "Invalid request body",
	ErrValidation:      "Validation failed",
	ErrTokenInvalid:    "Authentication required",
	ErrTooManyRequests: "Too many requests, please try again later",
	ErrForbidden:       "Insufficient permissions",
	ErrCreated:         "Created",
	ErrNotFound:        "Resource not found",

	// users
	ErrInvalidCredentials: "Invalid credentials",
	ErrSetupComplete:      "Setup already completed",

	// store
	ErrStore: "Spreadsheet request failed",
}

var codeStatusMap = map[int]int{
	// common
	ErrSuccess:         StatusOK,
	ErrUnknown:         StatusInternalServerError,
	ErrBind:            StatusBadRequest,
	ErrValidation:      StatusBadRequest,
	ErrTokenInvalid:    StatusUnauthorized,
	ErrTooManyRequests: StatusTooManyRequests,
	ErrForbidden:       StatusForbidden,
	ErrCreated:         StatusCreated,
	ErrNotFound:        StatusNotFound,

	// users
	ErrInvalidCredentials: StatusUnauthorized,
	ErrSetupComplete:      StatusForbidden,

	// store
	ErrStore: StatusInternalServerError,
}

// GetMessage returns the default message of a code
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "Unknown error"
}

// GetStatus returns the HTTP status of a code
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
