package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tarefasapp/tarefas/internal/models"
	"github.com/tarefasapp/tarefas/internal/services"
)

type activityResponse struct {
	ID           int64  `json:"id"`
	TaskID       int64  `json:"taskId"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	Observations string `json:"observations"`
}

func newActivityResponse(activity *models.Activity) activityResponse {
	return activityResponse{
		ID:           activity.ID,
		TaskID:       activity.TaskID,
		Date:         activity.Date,
		StartTime:    activity.StartTime,
		EndTime:      activity.EndTime,
		Observations: activity.Observations,
	}
}

func newActivityListResponse(activities []models.Activity) []activityResponse {
	response := make([]activityResponse, len(activities))
	for i := range activities {
		response[i] = newActivityResponse(&activities[i])
	}
	return response
}

type createActivityRequest struct {
	TaskID       int64  `json:"taskId" binding:"required,gt=0"`
	Date         string `json:"date" binding:"required,datetime=2006-01-02"`
	StartTime    string `json:"startTime" binding:"required"`
	EndTime      string `json:"endTime" binding:"required"`
	Observations string `json:"observations"`
}

func (r createActivityRequest) valid() bool {
	return isClock(r.StartTime) && isClock(r.EndTime)
}

// Either bound may be omitted; both are inclusive.
type activityRangeQuery struct {
	Start string `form:"start" binding:"omitempty,datetime=2006-01-02"`
	End   string `form:"end" binding:"omitempty,datetime=2006-01-02"`
}

func (h *handlerImpl) HandleGetActivities(c *gin.Context) {
	identity, ok := h.requireIdentity(c)
	if !ok {
		return
	}

	var query activityRangeQuery
	err := c.ShouldBindQuery(&query)
	if err != nil {
		h.logger.Warn().
			Err(err).
			Str("start", c.Query("start")).
			Str("end", c.Query("end")).
			Msg("invalid date range")
		abort(c, newBadRequestError("invalid date range"))
		return
	}
	dateRange := services.DateRange{
		Start: query.Start,
		End:   query.End,
	}

	activities, err := h.activities.ListActivities(c, identity.UserID, dateRange)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to list activities")
		abort(c, newStatusTextError(http.StatusInternalServerError))
		return
	}
	c.JSON(http.StatusOK, newActivityListResponse(activities))
}

func (h *handlerImpl) HandleGetTaskActivities(c *gin.Context) {
	identity, ok := h.requireIdentity(c)
	if !ok {
		return
	}
	taskID, ok := h.requireIDParam(c, "taskId")
	if !ok {
		return
	}

	activities, err := h.activities.ListTaskActivities(c, identity.UserID, taskID)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			abort(c, newNotFoundError(errTaskNotFound.Error()))
			return
		}

		h.logger.Error().
			Err(err).
			Msg("failed to list task activities")
		abort(c, newStatusTextError(http.StatusInternalServerError))
		return
	}
	c.JSON(http.StatusOK, newActivityListResponse(activities))
}

func (h *handlerImpl) HandleCreateActivity(c *gin.Context) {
	identity, ok := h.requireIdentity(c)
	if !ok {
		return
	}

	var req createActivityRequest
	err := c.ShouldBindJSON(&req)
	if err != nil || !req.valid() {
		h.logger.Warn().
			Err(err).
			Msg("failed to bind create activity request")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	activity, err := h.activities.CreateActivity(c, services.CreateActivityParams{
		UserID:       identity.UserID,
		TaskID:       req.TaskID,
		Date:         req.Date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Observations: req.Observations,
	})
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			abort(c, newNotFoundError(errTaskNotFound.Error()))
			return
		}

		h.logger.Error().
			Err(err).
			Msg("failed to create activity")
		abort(c, newStatusTextError(http.StatusInternalServerError))
		return
	}
	c.JSON(http.StatusCreated, newActivityResponse(activity))
}
