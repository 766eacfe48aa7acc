package handler

import (
	"net/http"
	"time"

	"github.com/sysu-ecnc-dev/break-reminder/backend/internal/domain"
)

func (h *Handler) CompleteTask(w http.ResponseWriter, r *http.Request) {
	task := r.Context().Value(TaskInfoCtx).(*domain.Task)

	if task.IsCompleted() {
		h.errorResponse(w, r, "任务已经完成")
		return
	}

	if err := h.repository.CompleteTask(task, time.Now()); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "任务已完成", task)
}
