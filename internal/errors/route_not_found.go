package errors

import "net/http"

var ErrRouteNotFound = &Exception{
	Message:    "route not found",
	StatusCode: http.StatusNotFound,
}
