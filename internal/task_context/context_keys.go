package task_context

import "context"

type ctxKey string

const (
	TaskIDKey      ctxKey = "taskID"
	AuthSubjectKey ctxKey = "authSubject"
)

// WithTaskID stashes the id of the in-flight task so log records can carry it.
func WithTaskID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, TaskIDKey, id)
}

func TaskIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(TaskIDKey).(string)
	return id, ok
}

func WithAuthSubject(ctx context.Context, sub string) context.Context {
	return context.WithValue(ctx, AuthSubjectKey, sub)
}

func AuthSubjectFromContext(ctx context.Context) (string, bool) {
	sub, ok := ctx.Value(AuthSubjectKey).(string)
	return sub, ok
}
