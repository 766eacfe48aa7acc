package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/sysu-ecnc-dev/break-reminder/backend/internal/domain"
)

// InsertNotificationIfAbsent 以单条语句完成 "查重 + 插入":
// 仅当 cutoff 之后不存在相同 (worker_id, category, dedup_key) 的记录时才插入。
// 返回是否真的插入了。并发的多轮评估依赖这条语句的原子性避免重复通知,
// 绝不能拆成先查后插的两次往返。
func (r *Repository) InsertNotificationIfAbsent(n *domain.Notification, cutoff time.Time) (bool, error) {
	payload, err := json.Marshal(n.Payload)
	if err != nil {
		return false, err
	}

	query := `
		INSERT INTO notifications (worker_id, category, type, title, message, dedup_key, payload, created_at)
		SELECT $1, $2, $3, $4, $5, $6, $7, $8
		WHERE NOT EXISTS (
			SELECT 1 FROM notifications
			WHERE worker_id = $1 AND category = $2 AND dedup_key = $6 AND created_at > $9
		)
		RETURNING id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{n.WorkerID, n.Category, n.Type, n.Title, n.Message, n.DedupKey, payload, n.CreatedAt, cutoff}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&n.ID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// 冷却期内已有等价通知, 本次被抑制
			return false, nil
		}
		return false, err
	}

	return true, nil
}

func (r *Repository) GetWorkerNotifications(workerID int64, limit int) ([]*domain.Notification, error) {
	query := `
		SELECT id, category, type, title, message, dedup_key, payload, created_at
		FROM notifications
		WHERE worker_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, workerID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifications := make([]*domain.Notification, 0)
	for rows.Next() {
		n := &domain.Notification{WorkerID: workerID}
		var payload []byte
		dst := []any{&n.ID, &n.Category, &n.Type, &n.Title, &n.Message, &n.DedupKey, &payload, &n.CreatedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(payload, &n.Payload); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return notifications, nil
}
