package dto

import (
	"task-track-service.com/task-track-service/internal/constants"
	model "task-track-service.com/task-track-service/internal/models"
)

type CreateTaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status" validate:"omitempty,oneof=pending done"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status" validate:"omitempty,oneof=pending done"`
}

// UpdateTaskInput carries the validated subset of fields to patch.
// DescriptionSet distinguishes "set description to null" from "leave it
// alone"; a nil Title or Status simply means the field was not supplied.
type UpdateTaskInput struct {
	Title          *string
	Description    *string
	DescriptionSet bool
	Status         *constants.TaskStatus
}

// Empty reports whether the input patches nothing.
func (in UpdateTaskInput) Empty() bool {
	return in.Title == nil && !in.DescriptionSet && in.Status == nil
}

// TaskEnvelope wraps a task with a human-readable message for create and
// update responses.
type TaskEnvelope struct {
	Message string     `json:"message"`
	Task    model.Task `json:"task"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
