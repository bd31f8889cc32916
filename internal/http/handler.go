package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"task-track-service.com/task-track-service/internal/constants"
	dto "task-track-service.com/task-track-service/internal/data_models"
	apperr "task-track-service.com/task-track-service/internal/errors"
	"task-track-service.com/task-track-service/internal/http/validators"
	model "task-track-service.com/task-track-service/internal/models"
	"task-track-service.com/task-track-service/internal/services"
)

type Handler struct {
	taskService *services.TaskService
}

func NewHandler(taskService *services.TaskService) *Handler {
	return &Handler{
		taskService: taskService,
	}
}

func (h *Handler) CreateTask(c echo.Context) error {
	req, err := validators.DecodeCreateTaskRequest(c)
	if err != nil {
		return err
	}

	status := constants.StatusPending
	if req.Status != nil {
		status = constants.TaskStatus(*req.Status)
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), req.Title, req.Description, status)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, dto.TaskEnvelope{
		Message: "task created",
		Task:    *task,
	})
}

func (h *Handler) ListTasks(c echo.Context) error {
	tasks, err := h.taskService.ListTasks(c.Request().Context())
	if err != nil {
		return err
	}

	if tasks == nil {
		tasks = []model.Task{}
	}

	return c.JSON(http.StatusOK, tasks)
}

func (h *Handler) GetTask(c echo.Context) error {
	id, err := taskIDParam(c)
	if err != nil {
		return err
	}

	task, err := h.taskService.GetTask(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) UpdateTask(c echo.Context) error {
	id, err := taskIDParam(c)
	if err != nil {
		return err
	}

	in, err := validators.DecodeUpdateTaskInput(c)
	if err != nil {
		return err
	}
	if in.Empty() {
		return apperr.ErrNoFieldsProvided
	}

	task, err := h.taskService.UpdateTask(c.Request().Context(), id, in)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.TaskEnvelope{
		Message: "task updated",
		Task:    *task,
	})
}

func (h *Handler) DeleteTask(c echo.Context) error {
	id, err := taskIDParam(c)
	if err != nil {
		return err
	}

	if err := h.taskService.DeleteTask(c.Request().Context(), id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// taskIDParam parses the :id segment. A non-numeric id never matches the
// resource, so it falls through to the generic route-not-found response
// rather than a bad-request one. An all-digit id too large for uint64 is
// numeric but names a row that cannot exist, so it reads as a missing task.
func taskIDParam(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, apperr.ErrTaskNotFound
		}
		return 0, apperr.ErrRouteNotFound
	}
	return uint(id), nil
}
