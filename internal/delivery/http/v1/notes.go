package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tarefasapp/tarefas/internal/models"
	"github.com/tarefasapp/tarefas/internal/services"
)

type noteResponse struct {
	ID     int64  `json:"id"`
	TaskID int64  `json:"taskId"`
	Text   string `json:"text"`
	Date   string `json:"date"`
	Time   string `json:"time"`
}

func newNoteResponse(note *models.Note) noteResponse {
	return noteResponse{
		ID:     note.ID,
		TaskID: note.TaskID,
		Text:   note.Text,
		Date:   note.Date,
		Time:   note.Time,
	}
}

type createNoteRequest struct {
	TaskID int64  `json:"taskId" binding:"required,gt=0"`
	Text   string `json:"text" binding:"required"`
	Date   string `json:"date" binding:"required,datetime=2006-01-02"`
	Time   string `json:"time" binding:"required"`
}

func (h *handlerImpl) HandleCreateNote(c *gin.Context) {
	identity, ok := h.requireIdentity(c)
	if !ok {
		return
	}

	var req createNoteRequest
	err := c.ShouldBindJSON(&req)
	if err != nil || !isClock(req.Time) {
		h.logger.Warn().
			Err(err).
			Msg("failed to bind create note request")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	note, err := h.notes.CreateNote(c, services.CreateNoteParams{
		UserID: identity.UserID,
		TaskID: req.TaskID,
		Text:   req.Text,
		Date:   req.Date,
		Time:   req.Time,
	})
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			abort(c, newNotFoundError(errTaskNotFound.Error()))
			return
		}

		h.logger.Error().
			Err(err).
			Msg("failed to create note")
		abort(c, newStatusTextError(http.StatusInternalServerError))
		return
	}
	c.JSON(http.StatusCreated, newNoteResponse(note))
}

func (h *handlerImpl) HandleGetTaskNotes(c *gin.Context) {
	identity, ok := h.requireIdentity(c)
	if !ok {
		return
	}
	taskID, ok := h.requireIDParam(c, "taskId")
	if !ok {
		return
	}

	notes, err := h.notes.ListTaskNotes(c, identity.UserID, taskID)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			abort(c, newNotFoundError(errTaskNotFound.Error()))
			return
		}

		h.logger.Error().
			Err(err).
			Msg("failed to list task notes")
		abort(c, newStatusTextError(http.StatusInternalServerError))
		return
	}

	response := make([]noteResponse, len(notes))
	for i := range notes {
		response[i] = newNoteResponse(&notes[i])
	}
	c.JSON(http.StatusOK, response)
}
