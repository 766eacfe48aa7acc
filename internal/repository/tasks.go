package repository

import (
	"context"
	"time"

	"github.com/sysu-ecnc-dev/break-reminder/backend/internal/domain"
)

func (r *Repository) CreateTask(task *domain.Task) error {
	query := `
		INSERT INTO tasks (worker_id, title, due_at)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if err := r.dbpool.QueryRowContext(ctx, query, task.WorkerID, task.Title, task.DueAt).Scan(&task.ID, &task.CreatedAt, &task.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetTaskByID(id int64) (*domain.Task, error) {
	query := `
		SELECT worker_id, title, due_at, completed_at, created_at, version
		FROM tasks WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	task := &domain.Task{
		ID: id,
	}

	dst := []any{&task.WorkerID, &task.Title, &task.DueAt, &task.CompletedAt, &task.CreatedAt, &task.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return task, nil
}

func (r *Repository) CompleteTask(task *domain.Task, completedAt time.Time) error {
	query := `
		UPDATE tasks
		SET completed_at = $1, version = version + 1
		WHERE id = $2 AND version = $3
		RETURNING completed_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if err := r.dbpool.QueryRowContext(ctx, query, completedAt, task.ID, task.Version).Scan(&task.CompletedAt, &task.Version); err != nil {
		return err
	}

	return nil
}

// GetOpenTasksDueBefore 返回所有未完成且截止时间不晚于 deadline 的任务,
// deadline 一般取 "当前时间 + 到期提前量"
func (r *Repository) GetOpenTasksDueBefore(deadline time.Time) ([]*domain.Task, error) {
	query := `
		SELECT id, worker_id, title, due_at, created_at, version
		FROM tasks
		WHERE completed_at IS NULL AND due_at <= $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, deadline)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		task := &domain.Task{}
		dst := []any{&task.ID, &task.WorkerID, &task.Title, &task.DueAt, &task.CreatedAt, &task.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}
