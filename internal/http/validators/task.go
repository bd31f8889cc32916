package validators

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"github.com/labstack/echo/v4"

	"task-track-service.com/task-track-service/internal/constants"
	dto "task-track-service.com/task-track-service/internal/data_models"
	apperr "task-track-service.com/task-track-service/internal/errors"
)

// DecodeCreateTaskRequest reads and validates a create body. Unknown keys
// are ignored; title is required and non-empty after trimming; status, when
// supplied, must be one of the recognized values.
func DecodeCreateTaskRequest(c echo.Context) (*dto.CreateTaskRequest, error) {
	body, err := readJSONBody(c)
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return nil, apperr.ErrInvalidPayload
	}

	var req dto.CreateTaskRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, apperr.ErrInvalidPayload
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return nil, apperr.ErrMissingTitle
	}

	if err := c.Validate(&req); err != nil {
		return nil, apperr.ErrInvalidStatus
	}

	return &req, nil
}

// DecodeUpdateTaskInput reads an update body and reports which of the three
// mutable fields were actually present. An empty body decodes to an empty
// input; the missing-fields failure is the handler's to raise. The raw key
// map distinguishes an absent description from an explicit null.
func DecodeUpdateTaskInput(c echo.Context) (dto.UpdateTaskInput, error) {
	var in dto.UpdateTaskInput

	body, err := readJSONBody(c)
	if err != nil {
		return in, err
	}
	if len(body) == 0 {
		return in, nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return in, apperr.ErrInvalidPayload
	}

	var req dto.UpdateTaskRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return in, apperr.ErrInvalidPayload
	}

	if hasField(raw, "title") {
		if req.Title == nil {
			return in, apperr.ErrInvalidPayload
		}
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return in, apperr.ErrMissingTitle
		}
		in.Title = &title
	}

	if hasField(raw, "description") {
		in.DescriptionSet = true
		in.Description = req.Description
	}

	if hasField(raw, "status") {
		if req.Status == nil {
			return in, apperr.ErrInvalidStatus
		}
		status := constants.TaskStatus(*req.Status)
		if !status.Valid() {
			return in, apperr.ErrInvalidStatus
		}
		in.Status = &status
	}

	return in, nil
}

// readJSONBody returns the request body, enforcing an application/json
// Content-Type on any non-empty body. An empty body comes back as nil.
func readJSONBody(c echo.Context) ([]byte, error) {
	req := c.Request()
	if req.Body == nil {
		return nil, nil
	}

	body, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, apperr.ErrInvalidPayload
	}

	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, nil
	}

	ctype := req.Header.Get(echo.HeaderContentType)
	if !strings.HasPrefix(ctype, echo.MIMEApplicationJSON) {
		return nil, apperr.ErrInvalidPayload
	}

	return body, nil
}

func hasField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}
