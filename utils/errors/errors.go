package errors

import "github.com/muhammadheryan/heating-backoffice/constant"

type CustomError struct {
	errType constant.ErrorType
	message string
}

func (c CustomError) Error() string {
	if c.message != "" {
		return c.message
	}
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func (c CustomError) Type() constant.ErrorType {
	return c.errType
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// SetCustomErrorMessage attaches a human readable detail that replaces the default message.
func SetCustomErrorMessage(errorType constant.ErrorType, message string) CustomError {
	return CustomError{
		errType: errorType,
		message: message,
	}
}
