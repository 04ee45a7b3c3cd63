package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/tarefasapp/tarefas/internal/models"
)

type activityServiceImpl struct {
	logger zerolog.Logger
	db     DB
}

func NewActivityService(
	logger zerolog.Logger,
	db DB,
) ActivityService {
	return &activityServiceImpl{
		logger: logger.With().Str("component", "activity_service").Logger(),
		db:     db,
	}
}

func (s *activityServiceImpl) ListActivities(ctx context.Context, userID int64, dateRange DateRange) ([]models.Activity, error) {
	var query strings.Builder
	query.WriteString(`
SELECT a.id,
       a.task_id,
       a.date::text,
       a.start_time::text,
       a.end_time::text,
       a.observations
FROM activities a
JOIN tasks t ON a.task_id = t.id
WHERE t.user_id = $1`)
	args := []any{userID}

	if dateRange.Start != "" {
		args = append(args, dateRange.Start)
		query.WriteString(" AND a.date >= $" + strconv.Itoa(len(args)) + "::date")
	}
	if dateRange.End != "" {
		args = append(args, dateRange.End)
		query.WriteString(" AND a.date <= $" + strconv.Itoa(len(args)) + "::date")
	}
	query.WriteString("\nORDER BY a.date, a.start_time\n")

	rows, err := s.db.Query(ctx, query.String(), args...)
	if err != nil {
		s.logger.Error().
			Err(err).
			Int64("user_id", userID).
			Msg("failed to select activities")
		return nil, fmt.Errorf("failed to select activities: %w", err)
	}

	activities, err := collectActivities(rows)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to scan activities")
		return nil, err
	}
	s.logger.Debug().
		Int("count", len(activities)).
		Int64("user_id", userID).
		Str("start", dateRange.Start).
		Str("end", dateRange.End).
		Msg("selected activities")
	return activities, nil
}

func (s *activityServiceImpl) ListTaskActivities(ctx context.Context, userID, taskID int64) ([]models.Activity, error) {
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

	const selectActivitiesByTaskIDQuery = `
SELECT id,
       task_id,
       date::text,
       start_time::text,
       end_time::text,
       observations
FROM activities
WHERE task_id = $1
ORDER BY date, start_time
`
	rows, err := s.db.Query(
		ctx,
		selectActivitiesByTaskIDQuery,
		taskID,
	)
	if err != nil {
		s.logger.Error().
			Err(err).
			Int64("task_id", taskID).
			Msg("failed to select activities by task id")
		return nil, fmt.Errorf("failed to select activities: %w", err)
	}

	activities, err := collectActivities(rows)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to scan activities")
		return nil, err
	}
	s.logger.Debug().
		Int("count", len(activities)).
		Int64("task_id", taskID).
		Msg("selected activities by task id")
	return activities, nil
}

func (s *activityServiceImpl) CreateActivity(ctx context.Context, params CreateActivityParams) (*models.Activity, error) {
	activity := &models.Activity{
		TaskID:       params.TaskID,
		Date:         params.Date,
		StartTime:    params.StartTime,
		EndTime:      params.EndTime,
		Observations: params.Observations,
	}

	// The insert only selects a row when the parent task is owned by the user.
	const insertActivityQuery = `
INSERT INTO activities (task_id,
                        date,
                        start_time,
                        end_time,
                        observations)
SELECT t.id, $3::date, $4::time, $5::time, $6
FROM tasks t
WHERE t.id = $1 AND t.user_id = $2
RETURNING id
`
	err := s.db.QueryRow(
		ctx,
		insertActivityQuery,
		activity.TaskID,
		params.UserID,
		activity.Date,
		activity.StartTime,
		activity.EndTime,
		activity.Observations,
	).Scan(&activity.ID)
	if err != nil {
		if isMissingTask(err) {
			s.logger.Warn().
				Int64("task_id", activity.TaskID).
				Int64("user_id", params.UserID).
				Msg("task not found")
			return nil, ErrTaskNotFound
		}

		s.logger.Error().
			Err(err).
			Int64("task_id", activity.TaskID).
			Msg("failed to insert activity")
		return nil, fmt.Errorf("failed to insert activity: %w", err)
	}

	s.logger.Info().
		Int64("activity_id", activity.ID).
		Int64("task_id", activity.TaskID).
		Msg("created activity")
	return activity, nil
}

func collectActivities(rows pgx.Rows) ([]models.Activity, error) {
	defer rows.Close()

	activities := make([]models.Activity, 0)
	for rows.Next() {
		var activity models.Activity
		err := rows.Scan(
			&activity.ID,
			&activity.TaskID,
			&activity.Date,
			&activity.StartTime,
			&activity.EndTime,
			&activity.Observations,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		activities = append(activities, activity)
	}

	err := rows.Err()
	if err != nil {
		return nil, fmt.Errorf("failed to iterate over rows: %w", err)
	}
	return activities, nil
}
