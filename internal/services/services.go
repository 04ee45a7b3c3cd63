package services

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/tarefasapp/tarefas/internal/auth"
	"github.com/tarefasapp/tarefas/internal/models"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrUserPasswordMismatch = errors.New("user password mismatch")
	// ErrTaskNotFound is returned both for missing tasks and for tasks
	// owned by someone else.
	ErrTaskNotFound = errors.New("task not found")
)

// DB is the subset of *pgxpool.Pool used by the services.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type TokenIssuer interface {
	Issue(identity auth.Identity) (string, time.Time, error)
}

type AuthService interface {
	// Login authenticates the user by email and password and issues
	// a signed token for the user.
	//
	// It returns ErrUserNotFound if the user with the given
	// email doesn't exist or ErrUserPasswordMismatch if the
	// given password doesn't match the user's password.
	Login(ctx context.Context, params LoginParams) (*LoginResult, error)
}

type TaskService interface {
	ListTasks(ctx context.Context, userID int64) ([]models.Task, error)
	CreateTask(ctx context.Context, params CreateTaskParams) (*models.Task, error)
	// UpdateTask, CompleteTask and DeleteTask return ErrTaskNotFound if
	// no task with the given ID is owned by the user.
	UpdateTask(ctx context.Context, params UpdateTaskParams) error
	CompleteTask(ctx context.Context, userID, taskID int64) error
	DeleteTask(ctx context.Context, userID, taskID int64) error
	// ListOpenTasks returns the open tasks of every user, most urgent first.
	ListOpenTasks(ctx context.Context) ([]models.Task, error)
}

type ActivityService interface {
	ListActivities(ctx context.Context, userID int64, dateRange DateRange) ([]models.Activity, error)
	ListTaskActivities(ctx context.Context, userID, taskID int64) ([]models.Activity, error)
	CreateActivity(ctx context.Context, params CreateActivityParams) (*models.Activity, error)
}

type NoteService interface {
	ListTaskNotes(ctx context.Context, userID, taskID int64) ([]models.Note, error)
	CreateNote(ctx context.Context, params CreateNoteParams) (*models.Note, error)
}

type LoginParams struct {
	Email    string
	Password string
}

type LoginResult struct {
	User           models.User
	Token          string
	TokenExpiresAt time.Time
}

type CreateTaskParams struct {
	UserID      int64
	Name        string
	Priority    int
	Deadline    string
	ElapsedTime string
	Notes       string
}

type UpdateTaskParams struct {
	ID       int64
	UserID   int64
	Name     string
	Priority int
	Deadline string
}

// DateRange bounds are inclusive dates in models.DateLayout; an empty
// bound is open.
type DateRange struct {
	Start string
	End   string
}

type CreateActivityParams struct {
	UserID       int64
	TaskID       int64
	Date         string
	StartTime    string
	EndTime      string
	Observations string
}

type CreateNoteParams struct {
	UserID int64
	TaskID int64
	Text   string
	Date   string
	Time   string
}
