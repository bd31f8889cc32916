package cmd

import (
	"errors"
	"net/http"
	"testing"
)

func TestDoRequestServerUnreachable(t *testing.T) {
	oldURL := serverURL
	serverURL = "http://127.0.0.1:1"
	defer func() { serverURL = oldURL }()

	_, _, err := doRequest(http.MethodGet, "/tasks", nil)
	if !errors.Is(err, errServerUnreachable) {
		t.Errorf("expected errServerUnreachable, got %v", err)
	}
}
