package response

const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong"

	InternalServerErrorCode = 500
	UnauthorizedErrorCode   = 401
	TooManyRequestsCode     = 429
)
