package services

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/tarefasapp/tarefas/internal/models"
)

type taskServiceImpl struct {
	logger zerolog.Logger
	db     DB
}

func NewTaskService(
	logger zerolog.Logger,
	db DB,
) TaskService {
	return &taskServiceImpl{
		logger: logger.With().Str("component", "task_service").Logger(),
		db:     db,
	}
}

func (s *taskServiceImpl) ListTasks(ctx context.Context, userID int64) ([]models.Task, error) {
	const selectTasksByUserIDQuery = `
SELECT id,
       user_id,
       name,
       priority,
       deadline::text,
       elapsed_time,
       notes,
       completed
FROM tasks
WHERE user_id = $1
ORDER BY id DESC
`
	rows, err := s.db.Query(
		ctx,
		selectTasksByUserIDQuery,
		userID,
	)
	if err != nil {
		s.logger.Error().
			Err(err).
			Int64("user_id", userID).
			Msg("failed to select tasks by user id")
		return nil, fmt.Errorf("failed to select tasks: %w", err)
	}

	tasks, err := collectTasks(rows)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to scan tasks")
		return nil, err
	}
	s.logger.Debug().
		Int("count", len(tasks)).
		Int64("user_id", userID).
		Msg("selected tasks by user id")
	return tasks, nil
}

func (s *taskServiceImpl) CreateTask(ctx context.Context, params CreateTaskParams) (*models.Task, error) {
	task := &models.Task{
		UserID:      params.UserID,
		Name:        params.Name,
		Priority:    params.Priority,
		Deadline:    params.Deadline,
		ElapsedTime: params.ElapsedTime,
		Notes:       params.Notes,
	}
	if task.ElapsedTime == "" {
		task.ElapsedTime = models.DefaultElapsedTime
	}

	const insertTaskQuery = `
INSERT INTO tasks (user_id,
                   name,
                   priority,
                   deadline,
                   elapsed_time,
                   notes)
VALUES ($1, $2, $3, $4::date, $5, $6)
RETURNING id
`
	err := s.db.QueryRow(
		ctx,
		insertTaskQuery,
		task.UserID,
		task.Name,
		task.Priority,
		task.Deadline,
		task.ElapsedTime,
		task.Notes,
	).Scan(&task.ID)
	if err != nil {
		s.logger.Error().
			Err(err).
			Int64("user_id", task.UserID).
			Msg("failed to insert task")
		return nil, fmt.Errorf("failed to insert task: %w", err)
	}

	s.logger.Info().
		Int64("task_id", task.ID).
		Int64("user_id", task.UserID).
		Msg("created task")
	return task, nil
}

func (s *taskServiceImpl) UpdateTask(ctx context.Context, params UpdateTaskParams) error {
	const updateTaskQuery = `
UPDATE tasks
SET name = $1,
    priority = $2,
    deadline = $3::date
WHERE id = $4 AND user_id = $5
`
	tag, err := s.db.Exec(
		ctx,
		updateTaskQuery,
		params.Name,
		params.Priority,
		params.Deadline,
		params.ID,
		params.UserID,
	)
	if err != nil {
		s.logger.Error().
			Err(err).
			Int64("task_id", params.ID).
			Msg("failed to update task")
		return fmt.Errorf("failed to update task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		s.logger.Warn().
			Int64("task_id", params.ID).
			Int64("user_id", params.UserID).
			Msg("task not found")
		return ErrTaskNotFound
	}

	s.logger.Info().
		Int64("task_id", params.ID).
		Int64("user_id", params.UserID).
		Msg("updated task")
	return nil
}

func (s *taskServiceImpl) CompleteTask(ctx context.Context, userID, taskID int64) error {
	// Postgres counts matched rows, so completing a completed task
	// still affects one row.
	const completeTaskQuery = `
UPDATE tasks
SET completed = TRUE
WHERE id = $1 AND user_id = $2
`
	tag, err := s.db.Exec(
		ctx,
		completeTaskQuery,
		taskID,
		userID,
	)
	if err != nil {
		s.logger.Error().
			Err(err).
			Int64("task_id", taskID).
			Msg("failed to complete task")
		return fmt.Errorf("failed to complete task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		s.logger.Warn().
			Int64("task_id", taskID).
			Int64("user_id", userID).
			Msg("task not found")
		return ErrTaskNotFound
	}

	s.logger.Info().
		Int64("task_id", taskID).
		Int64("user_id", userID).
		Msg("completed task")
	return nil
}

func (s *taskServiceImpl) DeleteTask(ctx context.Context, userID, taskID int64) error {
	const deleteTaskQuery = `
DELETE FROM tasks
WHERE id = $1 AND user_id = $2
`
	tag, err := s.db.Exec(
		ctx,
		deleteTaskQuery,
		taskID,
		userID,
	)
	if err != nil {
		s.logger.Error().
			Err(err).
			Int64("task_id", taskID).
			Msg("failed to delete task")
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		s.logger.Warn().
			Int64("task_id", taskID).
			Int64("user_id", userID).
			Msg("task not found")
		return ErrTaskNotFound
	}

	s.logger.Info().
		Int64("task_id", taskID).
		Int64("user_id", userID).
		Msg("deleted task")
	return nil
}

func (s *taskServiceImpl) ListOpenTasks(ctx context.Context) ([]models.Task, error) {
	const selectOpenTasksQuery = `
SELECT id,
       user_id,
       name,
       priority,
       deadline::text,
       elapsed_time,
       notes,
       completed
FROM tasks
WHERE completed = FALSE
ORDER BY priority DESC, deadline ASC
`
	rows, err := s.db.Query(ctx, selectOpenTasksQuery)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to select open tasks")
		return nil, fmt.Errorf("failed to select open tasks: %w", err)
	}

	tasks, err := collectTasks(rows)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to scan open tasks")
		return nil, err
	}
	s.logger.Debug().
		Int("count", len(tasks)).
		Msg("selected open tasks")
	return tasks, nil
}

func collectTasks(rows pgx.Rows) ([]models.Task, error) {
	defer rows.Close()

	tasks := make([]models.Task, 0)
	for rows.Next() {
		var task models.Task
		err := rows.Scan(
			&task.ID,
			&task.UserID,
			&task.Name,
			&task.Priority,
			&task.Deadline,
			&task.ElapsedTime,
			&task.Notes,
			&task.Completed,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}

	err := rows.Err()
	if err != nil {
		return nil, fmt.Errorf("failed to iterate over rows: %w", err)
	}
	return tasks, nil
}

