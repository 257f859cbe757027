package services

import (
	"context"
	"errors"
	"time"

	"smarttask/internal/models"
)

var (
	ErrDuplicateEmail     = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTaskNotFound       = errors.New("task not found")
	ErrInvalidTaskStatus  = errors.New("invalid task status")
	ErrEmptyTitle         = errors.New("title is required")
	ErrEmptyDescription   = errors.New("description is required")
)

type AuthService interface {
	// Register creates a user with the given email and password.
	//
	// It stores a one-way salted hash of the password, never the
	// plaintext, and the returned user carries no hash either.
	//
	// It returns ErrDuplicateEmail if the email is already taken.
	Register(ctx context.Context, params CredentialsParams) (*models.User, error)

	// Login authenticates the user by email and password and issues
	// a signed, time-limited session token.
	//
	// An unknown email and a password mismatch both fail with the same
	// ErrInvalidCredentials so the caller can't probe which emails
	// are registered.
	Login(ctx context.Context, params CredentialsParams) (*LoginResult, error)

	// ParseToken verifies the given session token and returns the
	// user ID it was issued for. It fails on a bad signature or once
	// the expiry has passed; there is no refresh, expired sessions
	// require a fresh login.
	ParseToken(token string) (string, error)
}

type TaskService interface {
	// CreateTask persists a new task. The initial status is always
	// pending regardless of the caller's input.
	//
	// It returns ErrEmptyTitle or ErrEmptyDescription when the
	// required fields are empty or whitespace-only; nothing is
	// persisted in that case.
	CreateTask(ctx context.Context, params CreateTaskParams) (*models.Task, error)

	// ListTasks returns all tasks in storage order.
	ListTasks(ctx context.Context) ([]*models.Task, error)

	// UpdateTask overwrites the task's status and assignee. The
	// assignee is overwritten unconditionally, an empty string clears
	// it. Any status may move to any other status.
	//
	// It returns ErrInvalidTaskStatus for a status outside the
	// enumerated set and ErrTaskNotFound for an unknown ID.
	UpdateTask(ctx context.Context, params UpdateTaskParams) (*models.Task, error)

	// CompleteTask forces the task's status to completed from any
	// state, leaving every other field untouched.
	//
	// It returns ErrTaskNotFound for an unknown ID.
	CompleteTask(ctx context.Context, id int64) (*models.Task, error)

	// DeleteTask removes the task. Deleting an absent ID is a no-op,
	// not an error.
	DeleteTask(ctx context.Context, id int64) error
}

type CredentialsParams struct {
	Email    string
	Password string
}

type LoginResult struct {
	UserID    string
	Token     string
	ExpiresAt time.Time
}

type CreateTaskParams struct {
	Title       string
	Description string
	DueDate     *time.Time
}

type UpdateTaskParams struct {
	ID           int64
	Status       string
	AssignedUser string
}
