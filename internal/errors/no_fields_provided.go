package errors

import "net/http"

var ErrNoFieldsProvided = &Exception{
	Message:    "no updatable fields provided",
	StatusCode: http.StatusBadRequest,
}
