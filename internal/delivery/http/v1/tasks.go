package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tarefasapp/tarefas/internal/models"
	"github.com/tarefasapp/tarefas/internal/services"
)

type taskResponse struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"userId"`
	Name        string `json:"name"`
	Priority    int    `json:"priority"`
	Deadline    string `json:"deadline"`
	ElapsedTime string `json:"elapsedTime"`
	Notes       string `json:"notes"`
	Completed   bool   `json:"completed"`
}

func newTaskResponse(task *models.Task) taskResponse {
	return taskResponse{
		ID:          task.ID,
		UserID:      task.UserID,
		Name:        task.Name,
		Priority:    task.Priority,
		Deadline:    task.Deadline,
		ElapsedTime: task.ElapsedTime,
		Notes:       task.Notes,
		Completed:   task.Completed,
	}
}

type successResponse struct {
	Success bool `json:"success"`
}

type createTaskRequest struct {
	Name        string  `json:"name" binding:"required,max=255"`
	Priority    *int    `json:"priority" binding:"required"`
	Deadline    string  `json:"deadline" binding:"required,datetime=2006-01-02"`
	ElapsedTime *string `json:"elapsedTime,omitempty" binding:"omitempty,max=32"`
	Notes       *string `json:"notes,omitempty"`
}

type updateTaskRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	Priority *int   `json:"priority" binding:"required"`
	Deadline string `json:"deadline" binding:"required,datetime=2006-01-02"`
}

func (h *handlerImpl) HandleGetTasks(c *gin.Context) {
	identity, ok := h.requireIdentity(c)
	if !ok {
		return
	}

	tasks, err := h.tasks.ListTasks(c, identity.UserID)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to list tasks")
		abort(c, newStatusTextError(http.StatusInternalServerError))
		return
	}

	response := make([]taskResponse, len(tasks))
	for i := range tasks {
		response[i] = newTaskResponse(&tasks[i])
	}
	c.JSON(http.StatusOK, response)
}

func (h *handlerImpl) HandleCreateTask(c *gin.Context) {
	identity, ok := h.requireIdentity(c)
	if !ok {
		return
	}

	var req createTaskRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Warn().
			Err(err).
			Msg("failed to bind create task request")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	params := services.CreateTaskParams{
		UserID:   identity.UserID,
		Name:     req.Name,
		Priority: *req.Priority,
		Deadline: req.Deadline,
	}
	if req.ElapsedTime != nil {
		params.ElapsedTime = *req.ElapsedTime
	}
	if req.Notes != nil {
		params.Notes = *req.Notes
	}

	task, err := h.tasks.CreateTask(c, params)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to create task")
		abort(c, newStatusTextError(http.StatusInternalServerError))
		return
	}
	c.JSON(http.StatusCreated, newTaskResponse(task))
}

func (h *handlerImpl) HandleUpdateTask(c *gin.Context) {
	identity, ok := h.requireIdentity(c)
	if !ok {
		return
	}
	taskID, ok := h.requireIDParam(c, "id")
	if !ok {
		return
	}

	var req updateTaskRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Warn().
			Err(err).
			Msg("failed to bind update task request")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	err = h.tasks.UpdateTask(c, services.UpdateTaskParams{
		ID:       taskID,
		UserID:   identity.UserID,
		Name:     req.Name,
		Priority: *req.Priority,
		Deadline: req.Deadline,
	})
	h.respondTaskMutation(c, err, "failed to update task")
}

func (h *handlerImpl) HandleCompleteTask(c *gin.Context) {
	identity, ok := h.requireIdentity(c)
	if !ok {
		return
	}
	taskID, ok := h.requireIDParam(c, "id")
	if !ok {
		return
	}

	err := h.tasks.CompleteTask(c, identity.UserID, taskID)
	h.respondTaskMutation(c, err, "failed to complete task")
}

func (h *handlerImpl) HandleDeleteTask(c *gin.Context) {
	identity, ok := h.requireIdentity(c)
	if !ok {
		return
	}
	taskID, ok := h.requireIDParam(c, "id")
	if !ok {
		return
	}

	err := h.tasks.DeleteTask(c, identity.UserID, taskID)
	h.respondTaskMutation(c, err, "failed to delete task")
}

func (h *handlerImpl) respondTaskMutation(c *gin.Context, err error, failure string) {
	switch {
	case err == nil:
		c.JSON(http.StatusOK, successResponse{Success: true})
	case errors.Is(err, services.ErrTaskNotFound):
		abort(c, newNotFoundError(errTaskNotFound.Error()))
	default:
		h.logger.Error().
			Err(err).
			Msg(failure)
		abort(c, newStatusTextError(http.StatusInternalServerError))
	}
}
