package repository

import (
	"context"
	"time"

	"github.com/sysu-ecnc-dev/break-reminder/backend/internal/domain"
)

func (r *Repository) CreateBreakRecord(record *domain.BreakRecord) error {
	query := `
		INSERT INTO break_records (worker_id, window_kind, taken_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if err := r.dbpool.QueryRowContext(ctx, query, record.WorkerID, record.WindowKind, record.TakenAt).Scan(&record.ID); err != nil {
		return err
	}

	return nil
}

// GetTakenBreakKinds 返回员工自 since(当前班次开始时刻)以来已休过的窗口集合,
// 评估器据此抑制对应窗口的全部后续提醒
func (r *Repository) GetTakenBreakKinds(workerID int64, since time.Time) (map[domain.WindowKind]bool, error) {
	query := `
		SELECT window_kind FROM break_records
		WHERE worker_id = $1 AND taken_at >= $2
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, workerID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	taken := make(map[domain.WindowKind]bool)
	for rows.Next() {
		var kind domain.WindowKind
		if err := rows.Scan(&kind); err != nil {
			return nil, err
		}
		taken[kind] = true
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return taken, nil
}
