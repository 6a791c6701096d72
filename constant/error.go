package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrConflict
	ErrInvalidPassword
	ErrForbidden
	ErrInvalidTransition
	ErrInactiveUser
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:           "success",
	ErrInternal:          "error internal",
	ErrNotFound:          "data not found",
	ErrInvalidRequest:    "invalid request",
	ErrUnauthorize:       "unauthorize request",
	ErrConflict:          "data already exists",
	ErrInvalidPassword:   "password invalid",
	ErrForbidden:         "forbidden",
	ErrInvalidTransition: "invalid status transition",
	ErrInactiveUser:      "user inactive or invalid",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:           http.StatusOK,
	ErrInternal:          http.StatusInternalServerError,
	ErrNotFound:          http.StatusNotFound,
	ErrInvalidRequest:    http.StatusBadRequest,
	ErrUnauthorize:       http.StatusUnauthorized,
	ErrConflict:          http.StatusConflict,
	ErrInvalidPassword:   http.StatusBadRequest,
	ErrForbidden:         http.StatusForbidden,
	ErrInvalidTransition: http.StatusBadRequest,
	ErrInactiveUser:      http.StatusUnauthorized,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:           "0000",
	ErrInternal:          "0001",
	ErrNotFound:          "0002",
	ErrInvalidRequest:    "0003",
	ErrUnauthorize:       "0004",
	ErrConflict:          "0005",
	ErrInvalidPassword:   "0006",
	ErrForbidden:         "0007",
	ErrInvalidTransition: "0008",
	ErrInactiveUser:      "0009",
}
