package constant

const (
	INVALID_REQUEST          = "Invalid request payload"
	EMAIL_IN_USE             = "This email is already in use"
	EMAIL_NOT_FOUND          = "Email not found"
	INCORRECT_PASSWORD       = "Incorrect password"
	INVALID_TOKEN            = "Invalid or expired token"
	TOKEN_REQUIRED           = "Token is required"
	USER_ID_REQUIRED         = "User ID is required"
	SOMETHING_WENT_WRONG     = "Internal server error"
	UNAUTHORIZED_ACCESS      = "Unauthorized access"
	PAGE_NUMBER_OUT_OF_RANGE = "Page number out of range"
)
