package seed

import (
	"log/slog"

	"github.com/sysu-ecnc-dev/break-reminder/backend/internal/domain"
	"github.com/sysu-ecnc-dev/break-reminder/backend/internal/repository"
	"github.com/sysu-ecnc-dev/break-reminder/backend/internal/utils"
)

// SeedRandomWorkers 插入 n 个带随机班次的员工, 返回成功插入的员工
func SeedRandomWorkers(r *repository.Repository, n int, password string, emailDomainName string) []*domain.Worker {
	workers := make([]*domain.Worker, 0, n)

	for i := 0; i < n; i++ {
		worker, err := utils.GenerateRandomWorker(password, emailDomainName)
		if err != nil {
			slog.Error("生成随机员工失败", "error", err)
			continue
		}

		if err := r.CreateWorker(worker); err != nil {
			// 随机用户名可能撞车, 撞了就跳过
			slog.Error("插入随机员工失败", "username", worker.Username, "error", err)
			continue
		}

		slog.Info("已插入随机员工", "id", worker.ID, "username", worker.Username, "shiftTime", worker.ShiftTime)
		workers = append(workers, worker)
	}

	return workers
}

// SeedRandomTasks 为每个员工插入 perWorker 个随机任务
func SeedRandomTasks(r *repository.Repository, workers []*domain.Worker, perWorker int) {
	for _, worker := range workers {
		for i := 0; i < perWorker; i++ {
			task := utils.GenerateRandomTask(worker.ID)
			if err := r.CreateTask(task); err != nil {
				slog.Error("插入随机任务失败", "workerID", worker.ID, "error", err)
				continue
			}
			slog.Info("已插入随机任务", "id", task.ID, "workerID", worker.ID, "dueAt", task.DueAt)
		}
	}
}
