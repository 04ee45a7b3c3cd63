package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/tarefasapp/tarefas/internal/models"
)

type noteServiceImpl struct {
	logger zerolog.Logger
	db     DB
}

func NewNoteService(
	logger zerolog.Logger,
	db DB,
) NoteService {
	return &noteServiceImpl{
		logger: logger.With().Str("component", "note_service").Logger(),
		db:     db,
	}
}

func (s *noteServiceImpl) ListTaskNotes(ctx context.Context, userID, taskID int64) ([]models.Note, error) {
	err := ensureTaskOwner(ctx, s.db, userID, taskID)
	if err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			s.logger.Warn().
				Int64("task_id", taskID).
				Int64("user_id", userID).
				Msg("task not found")
			return nil, err
		}

		s.logger.Error().
			Err(err).
			Int64("task_id", taskID).
			Msg("failed to check task owner")
		return nil, fmt.Errorf("failed to check task owner: %w", err)
	}

	const selectNotesByTaskIDQuery = `
SELECT id,
       task_id,
       text,
       date::text,
       time::text
FROM notes
WHERE task_id = $1
ORDER BY date DESC, time DESC
`
	rows, err := s.db.Query(
		ctx,
		selectNotesByTaskIDQuery,
		taskID,
	)
	if err != nil {
		s.logger.Error().
			Err(err).
			Int64("task_id", taskID).
			Msg("failed to select notes by task id")
		return nil, fmt.Errorf("failed to select notes: %w", err)
	}

	notes, err := collectNotes(rows)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to scan notes")
		return nil, err
	}
	s.logger.Debug().
		Int("count", len(notes)).
		Int64("task_id", taskID).
		Msg("selected notes by task id")
	return notes, nil
}

func (s *noteServiceImpl) CreateNote(ctx context.Context, params CreateNoteParams) (*models.Note, error) {
	note := &models.Note{
		TaskID: params.TaskID,
		Text:   params.Text,
		Date:   params.Date,
		Time:   params.Time,
	}

	const insertNoteQuery = `
INSERT INTO notes (task_id,
                   text,
                   date,
                   time)
SELECT t.id, $3, $4::date, $5::time
FROM tasks t
WHERE t.id = $1 AND t.user_id = $2
RETURNING id
`
	err := s.db.QueryRow(
		ctx,
		insertNoteQuery,
		note.TaskID,
		params.UserID,
		note.Text,
		note.Date,
		note.Time,
	).Scan(&note.ID)
	if err != nil {
		if isMissingTask(err) {
			s.logger.Warn().
				Int64("task_id", note.TaskID).
				Int64("user_id", params.UserID).
				Msg("task not found")
			return nil, ErrTaskNotFound
		}

		s.logger.Error().
			Err(err).
			Int64("task_id", note.TaskID).
			Msg("failed to insert note")
		return nil, fmt.Errorf("failed to insert note: %w", err)
	}

	s.logger.Info().
		Int64("note_id", note.ID).
		Int64("task_id", note.TaskID).
		Msg("created note")
	return note, nil
}

func collectNotes(rows pgx.Rows) ([]models.Note, error) {
	defer rows.Close()

	notes := make([]models.Note, 0)
	for rows.Next() {
		var note models.Note
		err := rows.Scan(
			&note.ID,
			&note.TaskID,
			&note.Text,
			&note.Date,
			&note.Time,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, note)
	}

	err := rows.Err()
	if err != nil {
		return nil, fmt.Errorf("failed to iterate over rows: %w", err)
	}
	return notes, nil
}
