package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"smarttask/internal/models"
)

type taskServiceImpl struct {
	logger zerolog.Logger
	pgPool *pgxpool.Pool
}

func NewTaskService(
	logger zerolog.Logger,
	pgPool *pgxpool.Pool,
) TaskService {
	return &taskServiceImpl{
		logger: logger,
		pgPool: pgPool,
	}
}

func (s *taskServiceImpl) CreateTask(ctx context.Context, params CreateTaskParams) (*models.Task, error) {
	if strings.TrimSpace(params.Title) == "" {
		return nil, ErrEmptyTitle
	}
	if strings.TrimSpace(params.Description) == "" {
		return nil, ErrEmptyDescription
	}

	now := time.Now()
	task := &models.Task{
		Title:       params.Title,
		Description: params.Description,
		Status:      models.StatusPending,
		DueDate:     params.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	const insertTaskQuery = `
INSERT INTO tasks (title,
                   description,
                   status,
                   due_date,
                   assigned_user,
                   created_at,
                   updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id
`
	err := s.pgPool.QueryRow(
		ctx,
		insertTaskQuery,
		task.Title,
		task.Description,
		task.Status,
		task.DueDate,
		task.AssignedUser,
		task.CreatedAt,
		task.UpdatedAt,
	).Scan(&task.ID)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to insert task")
		return nil, err
	}

	s.logger.Info().
		Int64("task_id", task.ID).
		Msg("created task")
	return task, nil
}

func (s *taskServiceImpl) ListTasks(ctx context.Context) ([]*models.Task, error) {
	const selectTasksQuery = `
SELECT id,
       title,
       description,
       status,
       due_date,
       assigned_user,
       created_at,
       updated_at
FROM tasks
ORDER BY id
`
	rows, err := s.pgPool.Query(ctx, selectTasksQuery)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to select tasks")
		return nil, err
	}
	defer rows.Close()

	tasks := make([]*models.Task, 0, 32)
	for rows.Next() {
		task := &models.Task{}
		err = rows.Scan(
			&task.ID,
			&task.Title,
			&task.Description,
			&task.Status,
			&task.DueDate,
			&task.AssignedUser,
			&task.CreatedAt,
			&task.UpdatedAt,
		)
		if err != nil {
			s.logger.Error().
				Err(err).
				Msg("failed to scan task")
			return nil, err
		}
		tasks = append(tasks, task)
	}

	err = rows.Err()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to iterate over rows")
		return nil, err
	}

	s.logger.Debug().
		Int("count", len(tasks)).
		Msg("selected tasks")
	return tasks, nil
}

func (s *taskServiceImpl) UpdateTask(ctx context.Context, params UpdateTaskParams) (*models.Task, error) {
	if !models.ValidStatus(params.Status) {
		s.logger.Error().
			Str("status", params.Status).
			Msg("invalid task status")
		return nil, ErrInvalidTaskStatus
	}

	task := &models.Task{
		ID:           params.ID,
		Status:       params.Status,
		AssignedUser: params.AssignedUser,
		UpdatedAt:    time.Now(),
	}

	const updateTaskQuery = `
UPDATE tasks
SET status = $1,
    assigned_user = $2,
    updated_at = $3
WHERE id = $4
RETURNING title, description, due_date, created_at
`
	err := s.pgPool.QueryRow(
		ctx,
		updateTaskQuery,
		task.Status,
		task.AssignedUser,
		task.UpdatedAt,
		task.ID,
	).Scan(
		&task.Title,
		&task.Description,
		&task.DueDate,
		&task.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Error().
				Int64("task_id", task.ID).
				Msg("task not found")
			return nil, ErrTaskNotFound
		}

		s.logger.Error().
			Err(err).
			Int64("task_id", task.ID).
			Msg("failed to update task")
		return nil, err
	}

	s.logger.Info().
		Int64("task_id", task.ID).
		Str("status", task.Status).
		Msg("updated task")
	return task, nil
}

func (s *taskServiceImpl) CompleteTask(ctx context.Context, id int64) (*models.Task, error) {
	task := &models.Task{
		ID:        id,
		Status:    models.StatusCompleted,
		UpdatedAt: time.Now(),
	}

	const completeTaskQuery = `
UPDATE tasks
SET status = $1,
    updated_at = $2
WHERE id = $3
RETURNING title, description, due_date, assigned_user, created_at
`
	err := s.pgPool.QueryRow(
		ctx,
		completeTaskQuery,
		task.Status,
		task.UpdatedAt,
		task.ID,
	).Scan(
		&task.Title,
		&task.Description,
		&task.DueDate,
		&task.AssignedUser,
		&task.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Error().
				Int64("task_id", task.ID).
				Msg("task not found")
			return nil, ErrTaskNotFound
		}

		s.logger.Error().
			Err(err).
			Int64("task_id", task.ID).
			Msg("failed to complete task")
		return nil, err
	}

	s.logger.Info().
		Int64("task_id", task.ID).
		Msg("completed task")
	return task, nil
}

func (s *taskServiceImpl) DeleteTask(ctx context.Context, id int64) error {
	const deleteTaskQuery = `
DELETE FROM tasks
WHERE id = $1
`
	tag, err := s.pgPool.Exec(
		ctx,
		deleteTaskQuery,
		id,
	)
	if err != nil {
		s.logger.Error().
			Err(err).
			Int64("task_id", id).
			Msg("failed to delete task")
		return err
	}
	if tag.RowsAffected() == 0 {
		// Deleting an absent id is a no-op by contract.
		s.logger.Warn().
			Int64("task_id", id).
			Msg("delete affected no rows")
		return nil
	}

	s.logger.Info().
		Int64("task_id", id).
		Msg("deleted task")
	return nil
}
