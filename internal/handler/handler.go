package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	zh_translations "github.com/go-playground/validator/v10/translations/zh"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/sysu-ecnc-dev/break-reminder/backend/internal/config"
	"github.com/sysu-ecnc-dev/break-reminder/backend/internal/reminder"
	"github.com/sysu-ecnc-dev/break-reminder/backend/internal/repository"
)

type Handler struct {
	validate      *validator.Validate
	config        *config.Config
	repository    *repository.Repository
	translator    ut.Translator
	notifyChannel *amqp.Channel
	redisClient   *redis.Client
	reminder      *reminder.Reminder

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, notifyCh *amqp.Channel, rdb *redis.Client, rem *reminder.Reminder) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	zh := zh.New()
	uni := ut.New(zh, zh)
	trans, _ := uni.GetTranslator("zh")
	if err := zh_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:      validate,
		config:        cfg,
		repository:    repo,
		translator:    trans,
		notifyChannel: notifyCh,
		redisClient:   rdb,
		reminder:      rem,

		Mux: chi.NewRouter(),
	}, nil
}

// 认证由机构统一的接入层处理, 本服务不做登录校验
func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	// 评估相关
	h.Mux.Route("/reminder", func(r chi.Router) {
		r.Post("/preview", h.PreviewShiftWindows)
		r.Post("/passes", h.RunReminderPass)
	})

	h.Mux.Route("/workers/{id}", func(r chi.Router) {
		r.Use(h.workerInfo)
		r.Get("/notifications", h.GetWorkerNotifications)
		r.Post("/breaks", h.RecordBreakTaken)
		r.Post("/tasks", h.CreateWorkerTask)
	})

	h.Mux.Route("/tasks/{id}", func(r chi.Router) {
		r.Use(h.taskInfo)
		r.Post("/complete", h.CompleteTask)
	})
}
