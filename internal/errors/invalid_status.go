package errors

import "net/http"

var ErrInvalidStatus = &Exception{
	Message:    "status must be one of: pending, done",
	StatusCode: http.StatusBadRequest,
}
