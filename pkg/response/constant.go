package response

const (
	// MessageSuccess is the message on successful responses.
	MessageSuccess = "Success"

	// DefaultErrorMessage hides internal error detail from clients.
	DefaultErrorMessage = "Something went wrong"

	// InternalServerErrorCode is the error_code for unexpected failures.
	InternalServerErrorCode = 500
)
