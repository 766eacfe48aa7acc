package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sysu-ecnc-dev/break-reminder/backend/internal/domain"
	"github.com/sysu-ecnc-dev/break-reminder/backend/internal/reminder"
)

// PreviewShiftWindows 对任意班次字符串做一次纯计算预览,
// 不查库也不落任何通知, 方便排查某个时刻为什么(不)触发提醒
func (h *Handler) PreviewShiftWindows(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ShiftTime string `json:"shiftTime" validate:"required"`
		Now       string `json:"now" validate:"required"` // 机构本地时刻, 形如 "15:04"
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	clock, err := time.Parse("15:04", req.Now)
	if err != nil {
		h.errorResponse(w, r, "时刻格式无效, 应形如 15:04")
		return
	}

	shift, err := reminder.ParseShiftTime(req.ShiftTime)
	if err != nil {
		switch {
		case errors.Is(err, reminder.ErrInvalidShiftTime):
			h.errorResponse(w, r, err.Error())
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	nowMinute := reminder.ProjectOntoTimeline(clock.Hour()*60+clock.Minute(), shift.StartMinute, shift.IsNightShift)

	type previewWindow struct {
		domain.Window
		Notification domain.NotificationKind `json:"notification"`
	}

	windows := make([]previewWindow, 0)
	for _, window := range reminder.ComputeWindows(shift) {
		windows = append(windows, previewWindow{
			Window:       window,
			Notification: reminder.Classify(window, nowMinute, false),
		})
	}

	h.successResponse(w, r, "预览成功", map[string]any{
		"shift":     shift,
		"nowMinute": nowMinute,
		"windows":   windows,
	})
}

// RunReminderPass 手动触发一轮评估, 与 cron 触发走完全相同的逻辑
func (h *Handler) RunReminderPass(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(h.config.Reminder.PassTimeout)*time.Second)
	defer cancel()

	sent, err := h.reminder.RunOnce(ctx, time.Now().UTC())
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "评估完成", map[string]any{
		"sent": sent,
	})
}
