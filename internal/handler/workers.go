package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/sysu-ecnc-dev/break-reminder/backend/internal/domain"
)

func (h *Handler) GetWorkerNotifications(w http.ResponseWriter, r *http.Request) {
	worker := r.Context().Value(WorkerInfoCtx).(*domain.Worker)

	limit := 20
	if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
		parsed, err := strconv.Atoi(limitParam)
		if err != nil || parsed <= 0 || parsed > 100 {
			h.errorResponse(w, r, "limit 参数无效")
			return
		}
		limit = parsed
	}

	notifications, err := h.repository.GetWorkerNotifications(worker.ID, limit)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取通知成功", notifications)
}

// RecordBreakTaken 记录员工已休某个窗口的休息,
// 该窗口剩余的所有提醒随之被抑制
func (h *Handler) RecordBreakTaken(w http.ResponseWriter, r *http.Request) {
	worker := r.Context().Value(WorkerInfoCtx).(*domain.Worker)

	var req struct {
		WindowKind string `json:"windowKind" validate:"required,oneof=morning lunch afternoon night_first night_meal night_second"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	record := &domain.BreakRecord{
		WorkerID:   worker.ID,
		WindowKind: domain.WindowKind(req.WindowKind),
		TakenAt:    time.Now(),
	}
	if err := h.repository.CreateBreakRecord(record); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "已记录休息", record)
}

func (h *Handler) CreateWorkerTask(w http.ResponseWriter, r *http.Request) {
	worker := r.Context().Value(WorkerInfoCtx).(*domain.Worker)

	var req struct {
		Title string    `json:"title" validate:"required"`
		DueAt time.Time `json:"dueAt" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	task := &domain.Task{
		WorkerID: worker.ID,
		Title:    req.Title,
		DueAt:    req.DueAt,
	}
	if err := h.repository.CreateTask(task); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "创建任务成功", task)
}
