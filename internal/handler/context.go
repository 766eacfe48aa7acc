package handler

type ContextKey string

var (
	WorkerInfoCtx ContextKey = "workerInfo"
	TaskInfoCtx   ContextKey = "taskInfo"
)
