package services

import (
	"context"

	"task-track-service.com/task-track-service/internal/cache"
	"task-track-service.com/task-track-service/internal/constants"
	dto "task-track-service.com/task-track-service/internal/data_models"
	apperr "task-track-service.com/task-track-service/internal/errors"
	model "task-track-service.com/task-track-service/internal/models"
	repository "task-track-service.com/task-track-service/internal/repositories"
)

type TaskService struct {
	repo  *repository.TaskRepository
	cache cache.TaskCache
}

func NewTaskService(repo *repository.TaskRepository, taskCache cache.TaskCache) *TaskService {
	return &TaskService{
		repo:  repo,
		cache: taskCache,
	}
}

// CreateTask persists a new task. Status defaults to pending when the
// caller supplied none; the repository stamps created_at and the store
// assigns the id.
func (s *TaskService) CreateTask(
	ctx context.Context,
	title string,
	description *string,
	status constants.TaskStatus,
) (*model.Task, error) {
	if status == "" {
		status = constants.StatusPending
	}

	return s.repo.CreateTask(ctx, title, description, status)
}

func (s *TaskService) GetTask(ctx context.Context, id uint) (*model.Task, error) {
	if task, ok := s.cache.Get(ctx, id); ok {
		return task, nil
	}

	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.cache.Set(ctx, task)
	return task, nil
}

func (s *TaskService) ListTasks(ctx context.Context) ([]model.Task, error) {
	return s.repo.List(ctx)
}

// UpdateTask patches only the fields present in the input and returns the
// full row re-read after the write.
func (s *TaskService) UpdateTask(ctx context.Context, id uint, in dto.UpdateTaskInput) (*model.Task, error) {
	fields := map[string]interface{}{}
	if in.Title != nil {
		fields["title"] = *in.Title
	}
	if in.DescriptionSet {
		fields["description"] = in.Description
	}
	if in.Status != nil {
		fields["status"] = string(*in.Status)
	}

	if len(fields) == 0 {
		return nil, apperr.ErrNoFieldsProvided
	}

	if err := s.repo.UpdateFields(ctx, id, fields); err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, id)

	return s.repo.FindByID(ctx, id)
}

func (s *TaskService) DeleteTask(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.cache.Invalidate(ctx, id)
	return nil
}
