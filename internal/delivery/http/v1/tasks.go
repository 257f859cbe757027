package v1

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"smarttask/internal/models"
	"smarttask/internal/services"
)

type taskResponse struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Status       string  `json:"status"`
	DueDate      *string `json:"due_date"`
	AssignedUser string  `json:"assigned_user"`
}

func newTaskResponse(task *models.Task) taskResponse {
	resp := taskResponse{
		ID:           task.ID,
		Title:        task.Title,
		Description:  task.Description,
		Status:       task.Status,
		AssignedUser: task.AssignedUser,
	}
	if task.DueDate != nil {
		dueDate := task.DueDate.Format(time.DateOnly)
		resp.DueDate = &dueDate
	}
	return resp
}

type createTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	// Status is accepted for compatibility with the form payload but
	// ignored: new tasks always start pending.
	Status  *string `json:"status"`
	DueDate *string `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
}

func (h *handlerImpl) HandleCreateTask(c *gin.Context) {
	var req createTaskRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	params := services.CreateTaskParams{
		Title:       req.Title,
		Description: req.Description,
	}
	if req.DueDate != nil && *req.DueDate != "" {
		dueDate, err := time.Parse(time.DateOnly, *req.DueDate)
		if err != nil {
			h.logger.Error().
				Err(err).
				Msg("failed to parse due date")
			abort(c, newBadRequestError(errInvalidRequestBody.Error()))
			return
		}
		params.DueDate = &dueDate
	}

	task, err := h.tasks.CreateTask(c, params)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to create task")
		switch {
		case errors.Is(err, services.ErrEmptyTitle),
			errors.Is(err, services.ErrEmptyDescription):
			abort(c, newBadRequestError(err.Error()))
		default:
			abort(c, newStatusTextError(http.StatusInternalServerError))
		}
		return
	}

	c.JSON(http.StatusOK, newTaskResponse(task))
}

func (h *handlerImpl) HandleGetTasks(c *gin.Context) {
	tasks, err := h.tasks.ListTasks(c)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to list tasks")
		abort(c, newStatusTextError(http.StatusInternalServerError))
		return
	}

	response := make([]taskResponse, len(tasks))
	for i, task := range tasks {
		response[i] = newTaskResponse(task)
	}

	c.JSON(http.StatusOK, response)
}

type updateTaskRequest struct {
	Status       string `json:"status" binding:"required"`
	AssignedUser string `json:"assigned_user"`
}

func (h *handlerImpl) HandleUpdateTask(c *gin.Context) {
	taskID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to parse task id")
		abort(c, newBadRequestError(errInvalidTaskID.Error()))
		return
	}

	var req updateTaskRequest
	err = c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	task, err := h.tasks.UpdateTask(c, services.UpdateTaskParams{
		ID:           taskID,
		Status:       req.Status,
		AssignedUser: req.AssignedUser,
	})
	if err != nil {
		h.logger.Error().
			Err(err).
			Int64("task_id", taskID).
			Msg("failed to update task")
		switch {
		case errors.Is(err, services.ErrInvalidTaskStatus):
			abort(c, newBadRequestError(services.ErrInvalidTaskStatus.Error()))
		case errors.Is(err, services.ErrTaskNotFound):
			abort(c, newNotFoundError(services.ErrTaskNotFound.Error()))
		default:
			abort(c, newStatusTextError(http.StatusInternalServerError))
		}
		return
	}

	c.JSON(http.StatusOK, newTaskResponse(task))
}

func (h *handlerImpl) HandleCompleteTask(c *gin.Context) {
	taskID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to parse task id")
		abort(c, newBadRequestError(errInvalidTaskID.Error()))
		return
	}

	task, err := h.tasks.CompleteTask(c, taskID)
	if err != nil {
		h.logger.Error().
			Err(err).
			Int64("task_id", taskID).
			Msg("failed to complete task")
		switch {
		case errors.Is(err, services.ErrTaskNotFound):
			abort(c, newNotFoundError(services.ErrTaskNotFound.Error()))
		default:
			abort(c, newStatusTextError(http.StatusInternalServerError))
		}
		return
	}

	c.JSON(http.StatusOK, newTaskResponse(task))
}

func (h *handlerImpl) HandleDeleteTask(c *gin.Context) {
	taskID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to parse task id")
		abort(c, newBadRequestError(errInvalidTaskID.Error()))
		return
	}

	err = h.tasks.DeleteTask(c, taskID)
	if err != nil {
		h.logger.Error().
			Err(err).
			Int64("task_id", taskID).
			Msg("failed to delete task")
		abort(c, newStatusTextError(http.StatusInternalServerError))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "task deleted"})
}

type assignableUserResponse struct {
	Name string `json:"name"`
}

// The assignment dropdown in the web client is fed from this fixed
// list; there is no people directory behind it yet.
var assignableUsers = []assignableUserResponse{
	{Name: "Ashley Johnson"},
	{Name: "Jordan Lewis"},
	{Name: "Taylor Jones"},
	{Name: "Chris Bong"},
}

func (h *handlerImpl) HandleGetAssignableUsers(c *gin.Context) {
	c.JSON(http.StatusOK, assignableUsers)
}
