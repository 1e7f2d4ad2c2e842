package response

const (
	MessageSuccess = "Success"

	DefaultErrorMessage     = "Something went wrong, please try again later"
	InternalServerErrorCode = 500

	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"
)
