package repository

import (
	"context"
	"time"

	"github.com/sysu-ecnc-dev/break-reminder/backend/internal/domain"
)

// GetActiveWorkersWithSchedule 返回所有在职且配置了班次时间的员工。
// 没有班次字符串的员工在这里就被排除, 不进入评估流程。
func (r *Repository) GetActiveWorkersWithSchedule() ([]*domain.Worker, error) {
	query := `
		SELECT id, username, full_name, email, role, shift_time, created_at, version
		FROM workers
		WHERE is_active = TRUE AND shift_time <> ''
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	workers := make([]*domain.Worker, 0)
	for rows.Next() {
		worker := &domain.Worker{IsActive: true}
		dst := []any{&worker.ID, &worker.Username, &worker.FullName, &worker.Email, &worker.Role, &worker.ShiftTime, &worker.CreatedAt, &worker.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		workers = append(workers, worker)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return workers, nil
}

func (r *Repository) GetWorkerByID(id int64) (*domain.Worker, error) {
	query := `
		SELECT username, full_name, email, role, shift_time, is_active, created_at, version
		FROM workers WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	worker := &domain.Worker{
		ID: id,
	}

	dst := []any{&worker.Username, &worker.FullName, &worker.Email, &worker.Role, &worker.ShiftTime, &worker.IsActive, &worker.CreatedAt, &worker.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return worker, nil
}

func (r *Repository) CreateWorker(worker *domain.Worker) error {
	query := `
		INSERT INTO workers (username, password_hash, full_name, email, role, shift_time)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, is_active, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{worker.Username, worker.PasswordHash, worker.FullName, worker.Email, worker.Role, worker.ShiftTime}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&worker.ID, &worker.IsActive, &worker.CreatedAt, &worker.Version); err != nil {
		return err
	}

	return nil
}
