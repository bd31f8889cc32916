package errors

import "errors"

type Exception struct {
	Message    string
	StatusCode int
}

func (e *Exception) Error() string {
	return e.Message
}

// From extracts the Exception wrapped inside err, if any.
func From(err error) (*Exception, bool) {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
