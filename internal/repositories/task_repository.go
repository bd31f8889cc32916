package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"

	"task-track-service.com/task-track-service/internal/constants"
	apperr "task-track-service.com/task-track-service/internal/errors"
	model "task-track-service.com/task-track-service/internal/models"
)

// Lock-retry bounds for transient sqlite BUSY/LOCKED failures: up to three
// attempts with a linear backoff (50ms, then 100ms) between them.
const (
	maxLockAttempts = 3
	lockBackoffUnit = 50 * time.Millisecond
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// CreateTask inserts a new row and returns it with the driver-assigned id.
func (r *TaskRepository) CreateTask(
	ctx context.Context,
	title string,
	description *string,
	status constants.TaskStatus,
) (*model.Task, error) {
	task := &model.Task{
		Title:       title,
		Description: description,
		Status:      status,
		CreatedAt:   time.Now().UTC().Format(model.CreatedAtLayout),
	}

	err := r.withLockRetry(func() error {
		return r.db.WithContext(ctx).Create(task).Error
	})
	if err != nil {
		return nil, err
	}

	return task, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id uint) (*model.Task, error) {
	var task model.Task

	err := r.withLockRetry(func() error {
		return r.db.WithContext(ctx).First(&task, "id = ?", id).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrTaskNotFound
		}
		return nil, err
	}

	return &task, nil
}

func (r *TaskRepository) List(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task

	err := r.withLockRetry(func() error {
		return r.db.WithContext(ctx).Order("id asc").Find(&tasks).Error
	})
	if err != nil {
		return nil, err
	}

	return tasks, nil
}

// UpdateFields patches the given columns on one row. The caller guarantees
// the map is non-empty.
func (r *TaskRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	var rowsAffected int64

	err := r.withLockRetry(func() error {
		res := r.db.WithContext(ctx).Model(&model.Task{}).
			Where("id = ?", id).
			Updates(fields)
		rowsAffected = res.RowsAffected
		return res.Error
	})
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return apperr.ErrTaskNotFound
	}

	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id uint) error {
	var rowsAffected int64

	err := r.withLockRetry(func() error {
		res := r.db.WithContext(ctx).Delete(&model.Task{}, "id = ?", id)
		rowsAffected = res.RowsAffected
		return res.Error
	})
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return apperr.ErrTaskNotFound
	}

	return nil
}

func (r *TaskRepository) withLockRetry(op func() error) error {
	var err error

	for attempt := 1; attempt <= maxLockAttempts; attempt++ {
		err = op()
		if err == nil || !isTransientLockError(err) {
			return err
		}
		if attempt < maxLockAttempts {
			time.Sleep(time.Duration(attempt) * lockBackoffUnit)
		}
	}

	return err
}

func isTransientLockError(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked
	}
	// gorm may flatten the driver error into a plain message.
	return strings.Contains(err.Error(), "database is locked") ||
		strings.Contains(err.Error(), "database table is locked")
}
