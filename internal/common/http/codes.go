package http

const (
	CodeUnknown            = "UNKNOWN"
	CodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	CodeBadRequest         = "BAD_REQUEST"
	CodeInvalidForm        = "INVALID_FORM"
	CodeInvalidPath        = "INVALID_PATH"
	CodeInvalidJokeID      = "INVALID_JOKE_ID"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeAuthRequired       = "AUTH_REQUIRED"
)
