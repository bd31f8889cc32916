package model

import (
	"task-track-service.com/task-track-service/internal/constants"
)

// CreatedAtLayout is the wire and storage format for task creation
// timestamps: UTC, second precision, trailing zone marker.
const CreatedAtLayout = "2006-01-02T15:04:05Z"

type Task struct {
	ID          uint                 `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string               `gorm:"not null" json:"title"`
	Description *string              `json:"description"`
	Status      constants.TaskStatus `gorm:"type:varchar(20);not null;default:pending" json:"status"`
	CreatedAt   string               `gorm:"not null" json:"created_at"`
}
