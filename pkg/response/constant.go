package response

// Messages
const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong, please try again later"
)

// Error codes
const (
	InternalServerErrorCode = 500
)

// Time formats
const (
	DateTimeFormat = "2006-01-02 15:04:05"
)
