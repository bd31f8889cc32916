package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Shared plumbing for the client subcommands. Each subcommand performs
// exactly one HTTP call against the server named by --server.

var serverURL string

// errServerUnreachable marks a transport failure already reported to the
// user; Execute exits nonzero without printing it again.
var errServerUnreachable = errors.New("server unreachable")

var httpClient = &http.Client{Timeout: 10 * time.Second}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8080", "base URL of the task server")
}

func apiURL(path string) string {
	return strings.TrimRight(serverURL, "/") + path
}

func doRequest(method, path string, payload interface{}) (*http.Response, []byte, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, nil, err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, apiURL(path), body)
	if err != nil {
		return nil, nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		fmt.Printf("could not reach the server at %s (is it running?)\n", serverURL)
		return nil, nil, errServerUnreachable
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, err
	}

	return resp, data, nil
}

func printJSON(data []byte) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		fmt.Println(string(data))
		return
	}
	fmt.Println(buf.String())
}

func parseTaskID(arg string) (uint64, error) {
	id, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("id must be a positive integer, got %q", arg)
	}
	return id, nil
}
