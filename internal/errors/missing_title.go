package errors

import "net/http"

var ErrMissingTitle = &Exception{
	Message:    "title is required",
	StatusCode: http.StatusBadRequest,
}
